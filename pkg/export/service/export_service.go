package service

import "io"

type ExportService interface {
	// Workbook writes the cycle's xlsx to w and returns a download name.
	Workbook(cycleID string, w io.Writer) (filename string, err error)
}
