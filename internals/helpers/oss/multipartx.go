package helper

import (
	"mime/multipart"
)

// Kandidat nama field multipart yang umum dipakai FE/Postman untuk lampiran
var defaultFileFieldCandidates = []string{
	"media[]", "media",
	"files[]", "files", "file",
	"attachments[]", "attachments",
}

// CollectUploadFiles mengumpulkan semua *FileHeader dari form multipart,
// dengan urutan preferensi berdasarkan kandidat field di atas.
func CollectUploadFiles(form *multipart.Form) (out []*multipart.FileHeader) {
	if form == nil || form.File == nil {
		return nil
	}

	seen := map[string]bool{}
	for _, key := range defaultFileFieldCandidates {
		if fhs, ok := form.File[key]; ok {
			for _, fh := range fhs {
				if fh != nil && fh.Filename != "" {
					out = append(out, fh)
				}
			}
			seen[key] = true
		}
	}
	// sweep semua key lain
	for key, fhs := range form.File {
		if seen[key] {
			continue
		}
		for _, fh := range fhs {
			if fh != nil && fh.Filename != "" {
				out = append(out, fh)
			}
		}
	}
	return out
}
