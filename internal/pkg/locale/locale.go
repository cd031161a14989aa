package locale

// Пакет отдаёт локализованные тексты сообщений и кнопок.
// Для незнакомого языка используется английский.

var messages = map[string]map[string]string{
	"start": {
		"en": "☁️ Welcome to TeleCloud!\n\nUpload files to the cloud and manage them right from Telegram.",
		"ru": "☁️ Добро пожаловать в TeleCloud!\n\nЗагружайте файлы в облако и управляйте ими прямо из Telegram.",
	},
	"fetching_files": {
		"en": "🔄 Fetching your files...",
		"ru": "🔄 Получаю список файлов...",
	},
	"files": {
		"en": "📂 Your files:",
		"ru": "📂 Ваши файлы:",
	},
	"no_files": {
		"en": "🤷 You have no files yet.",
		"ru": "🤷 У вас пока нет файлов.",
	},
	"file_list_failure": {
		"en": "❌ Failed to fetch the file list. Try again later.",
		"ru": "❌ Не удалось получить список файлов. Попробуйте позже.",
	},
	"file_details": {
		"en": "📄 %s\n\n👁 Views: %d\n👤 Unique views: %d\n\n🔗 %s\n⬇️ %s\n👀 %s",
		"ru": "📄 %s\n\n👁 Просмотров: %d\n👤 Уникальных: %d\n\n🔗 %s\n⬇️ %s\n👀 %s",
	},
	"file_not_found": {
		"en": "File not found",
		"ru": "Файл не найден",
	},
	"no_token": {
		"en": "🔑 You need a token first. Open Settings and set or generate one.",
		"ru": "🔑 Сначала нужен токен. Откройте настройки и укажите или сгенерируйте его.",
	},
	"upload_prompt": {
		"en": "📤 Send me the file you want to upload.",
		"ru": "📤 Отправьте файл, который хотите загрузить.",
	},
	"uploading_file": {
		"en": "⏳ Uploading file...",
		"ru": "⏳ Загружаю файл...",
	},
	"upload_success": {
		"en": "✅ File uploaded!\n\n🆔 %s\n\n🔗 %s\n⬇️ %s\n👀 %s",
		"ru": "✅ Файл загружен!\n\n🆔 %s\n\n🔗 %s\n⬇️ %s\n👀 %s",
	},
	"upload_failure": {
		"en": "❌ Upload failed. Try again later.",
		"ru": "❌ Не удалось загрузить файл. Попробуйте позже.",
	},
	"downloading_file": {
		"en": "⏳ Downloading file...",
		"ru": "⏳ Скачиваю файл...",
	},
	"file_download_failure": {
		"en": "❌ Failed to download the file. Try again later.",
		"ru": "❌ Не удалось скачать файл. Попробуйте позже.",
	},
	"file_delete_success": {
		"en": "🗑 File deleted.",
		"ru": "🗑 Файл удалён.",
	},
	"file_delete_failure": {
		"en": "❌ Failed to delete the file.",
		"ru": "❌ Не удалось удалить файл.",
	},
	"owner_key_missing": {
		"en": "Owner key not found",
		"ru": "Ключ владельца не найден",
	},
	"settings": {
		"en": "⚙️ Settings\n\n🔑 Your token: %s",
		"ru": "⚙️ Настройки\n\n🔑 Ваш токен: %s",
	},
	"token_not_set": {
		"en": "not set",
		"ru": "не задан",
	},
	"set_token_prompt": {
		"en": "🔑 Send me your access token as a message.",
		"ru": "🔑 Отправьте ваш токен доступа сообщением.",
	},
	"token_set_success": {
		"en": "✅ Token saved.",
		"ru": "✅ Токен сохранён.",
	},
	"invalid_token": {
		"en": "❌ Invalid token. Check it and try again.",
		"ru": "❌ Неверный токен. Проверьте его и попробуйте снова.",
	},
	"generating_token": {
		"en": "⏳ Generating token...",
		"ru": "⏳ Генерирую токен...",
	},
	"token_generated_success": {
		"en": "✅ New token generated and saved:\n\n%s",
		"ru": "✅ Новый токен сгенерирован и сохранён:\n\n%s",
	},
	"token_generated_failure": {
		"en": "❌ Failed to generate a token. Try again later.",
		"ru": "❌ Не удалось сгенерировать токен. Попробуйте позже.",
	},
	"unknown_command": {
		"en": "Unknown command 🤔",
		"ru": "Неизвестная команда 🤔",
	},
}

var buttons = map[string]map[string]string{
	"upload":         {"en": "📤 Upload", "ru": "📤 Загрузить"},
	"my_files":       {"en": "📂 My files", "ru": "📂 Мои файлы"},
	"settings":       {"en": "⚙️ Settings", "ru": "⚙️ Настройки"},
	"set_token":      {"en": "🔑 Set token", "ru": "🔑 Указать токен"},
	"generate_token": {"en": "✨ Generate token", "ru": "✨ Сгенерировать токен"},
	"previous_page":  {"en": "⬅️ Back", "ru": "⬅️ Назад"},
	"next_page":      {"en": "➡️ Next", "ru": "➡️ Вперёд"},
	"menu":           {"en": "🏠 Menu", "ru": "🏠 Меню"},
	"download":       {"en": "⬇️ Download", "ru": "⬇️ Скачать"},
	"delete":         {"en": "🗑 Delete", "ru": "🗑 Удалить"},
}

func Message(key, language string) string {
	return lookup(messages, key, language)
}

func Button(key, language string) string {
	return lookup(buttons, key, language)
}

func lookup(catalog map[string]map[string]string, key, language string) string {
	variants, ok := catalog[key]
	if !ok {
		return key
	}
	if text, ok := variants[language]; ok {
		return text
	}
	return variants["en"]
}
