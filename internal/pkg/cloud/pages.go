package cloud

// FilesPerPage — размер страницы в клавиатуре списка файлов.
const FilesPerPage = 5

// Page возвращает срез файлов для страницы page (нумерация с 1).
func Page(files []File, page int) []File {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * FilesPerPage
	if start >= len(files) {
		return nil
	}
	end := start + FilesPerPage
	if end > len(files) {
		end = len(files)
	}
	return files[start:end]
}

// TotalPages считает число страниц для count файлов.
func TotalPages(count int) int {
	if count == 0 {
		return 1
	}
	return (count + FilesPerPage - 1) / FilesPerPage
}
