package cmd

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vogtb/go-calctree/internal/sheet"
)

var filePath string

// loadOrNew reads the sheet at filePath, or returns a fresh empty Sheet
// if the file doesn't exist yet.
func loadOrNew() (*sheet.Sheet, error) {
	f, err := os.Open(filePath)
	if os.IsNotExist(err) {
		return sheet.New(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := sheet.New()
	if err := s.Load(f); err != nil {
		return nil, err
	}
	return s, nil
}

func persist(s *sheet.Sheet) error {
	f, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := s.Save(f); err != nil {
		return err
	}
	logrus.WithField("file", filePath).Debug("sheet saved")
	return nil
}
