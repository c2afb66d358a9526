package utils

import (
	"log"
	"os"
	"path/filepath"
)

func FileExist(filePath string) bool {
	var err error

	if _, err = os.Stat(filePath); os.IsNotExist(err) {
		return false
	}

	if err != nil {
		log.Panic(err)
	}

	return true
}

func CreateDirIfNotExist(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return err
		}
	}

	return nil
}

// CreateFileIfNotExist creates an empty file, and its containing
// directory, if either is missing.
func CreateFileIfNotExist(filePath string) error {
	if err := CreateDirIfNotExist(filepath.Dir(filePath)); err != nil {
		return err
	}

	if !FileExist(filePath) {
		file, err := os.Create(filePath)
		if err != nil {
			return err
		}
		return file.Close()
	}

	return nil
}
