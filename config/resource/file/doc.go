// Package file provides the file-backed resource the config store loads from and saves to.
//
// Reads and writes are single blocking calls over the whole file: Read returns the full
// contents, Write truncates and rewrites the file. There is no atomic rename and no backup,
// so a failed Write may leave the file truncated.
//
// Usage:
//
//	res := file.New("/etc/app/config.toml")
//	data, err := res.Read()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	err = res.Write(updated)
//
// Error Handling:
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
//   - Use errors.Is(err, fs.ErrNotExist) to check for a missing file
package file
