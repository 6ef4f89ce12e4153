package main

import (
	"github.com/skynet2/expense-tracker-sync/pkg/duplicatecleaner"
	"github.com/skynet2/expense-tracker-sync/pkg/manualsync"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type CleanupRequest struct {
	DryRun       bool           `json:"dryRun"`
	MaxToDelete  int            `json:"maxToDelete"`
	Manual       bool           `json:"manual"`
	IncludeCloud bool           `json:"includeCloud"`
	Keep         map[int]string `json:"keep"`
}

func (c CleanupRequest) Options() manualsync.CleanupOptions {
	return manualsync.CleanupOptions{
		DryRun:       c.DryRun,
		MaxToDelete:  c.MaxToDelete,
		Manual:       c.Manual,
		IncludeCloud: c.IncludeCloud,
		Keep:         c.Keep,
	}
}

type ScanResponse struct {
	Groups []duplicatecleaner.Group `json:"groups"`
	Total  int                      `json:"total"`
}

type ErrorResponse struct {
	Error  string             `json:"error"`
	Result *manualsync.Result `json:"result,omitempty"`
}
