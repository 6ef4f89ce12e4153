package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/skynet2/expense-tracker-sync/pkg/common"
	"github.com/skynet2/expense-tracker-sync/pkg/manualsync"
	"github.com/skynet2/expense-tracker-sync/pkg/printer"
)

type Handler struct {
	sync     SyncService
	notifier Notifier
	exporter Exporter
	printer  *printer.Printer
	apiKey   string
}

func NewHandler(
	sync SyncService,
	notifier Notifier,
	exporter Exporter,
	apiKey string,
) *Handler {
	return &Handler{
		sync:     sync,
		notifier: notifier,
		exporter: exporter,
		printer:  printer.NewPrinter(),
		apiKey:   apiKey,
	}
}

func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.withLogger, h.withAPIKey)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/sync/upload", h.Upload).Methods(http.MethodPost)
	api.HandleFunc("/sync/download", h.Download).Methods(http.MethodPost)
	api.HandleFunc("/sync/status", h.Status).Methods(http.MethodGet)
	api.HandleFunc("/export", h.Export).Methods(http.MethodGet)
	api.HandleFunc("/export.xlsx", h.ExportXLSX).Methods(http.MethodGet)
	api.HandleFunc("/import", h.Import).Methods(http.MethodPost)
	api.HandleFunc("/duplicates/scan", h.ScanDuplicates).Methods(http.MethodPost)
	api.HandleFunc("/duplicates/cleanup", h.CleanupDuplicates).Methods(http.MethodPost)
	api.HandleFunc("/recurring/materialize", h.MaterializeRecurring).Methods(http.MethodPost)

	return r
}

func (h *Handler) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lg := log.Logger.With().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()

		next.ServeHTTP(w, r.WithContext(lg.WithContext(r.Context())))
	})
}

func (h *Handler) withAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.apiKey != r.URL.Query().Get("api_key") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	res, err := h.sync.UploadToCloud(r.Context())
	h.writeResult(w, r, res, err)
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	res, err := h.sync.DownloadFromCloud(r.Context(), manualsync.DownloadOptions{
		ReplaceLocal:   queryBool(q.Get("replace")),
		MergeWithLocal: queryBool(q.Get("merge")),
		OverrideLedger: queryBool(q.Get("override_ledger")),
	})
	h.writeResult(w, r, res, err)
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.sync.GetDetailedStatus(r.Context())
	if err != nil {
		h.writeError(w, r, nil, err)
		return
	}

	writeJSON(w, http.StatusOK, status)
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	snap := h.sync.ExportLocalData(r.Context())

	w.Header().Set("Content-Disposition", `attachment; filename="expenses-backup.json"`)
	writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	snap := h.sync.ExportLocalData(r.Context())

	data, err := h.exporter.ExportBytes(snap)
	if err != nil {
		h.writeError(w, r, nil, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="expenses.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	snap, err := manualsync.ParseSnapshot(b)
	if err != nil {
		h.writeError(w, r, nil, err)
		return
	}

	q := r.URL.Query()

	res, err := h.sync.ImportLocalData(r.Context(), snap, manualsync.ImportOptions{
		ReplaceExisting: queryBool(q.Get("replace")),
		OverrideLedger:  queryBool(q.Get("override_ledger")),
	})
	h.writeResult(w, r, res, err)
}

func (h *Handler) ScanDuplicates(w http.ResponseWriter, r *http.Request) {
	groups, err := h.sync.ScanDuplicates(r.Context())
	if err != nil {
		h.writeError(w, r, nil, err)
		return
	}

	writeJSON(w, http.StatusOK, ScanResponse{
		Groups: groups,
		Total:  len(groups),
	})
}

func (h *Handler) CleanupDuplicates(w http.ResponseWriter, r *http.Request) {
	var req CleanupRequest

	b, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if len(b) > 0 {
		if err = json.Unmarshal(b, &req); err != nil {
			h.writeError(w, r, nil, errors.Wrap(common.ErrValidation, err.Error()))
			return
		}
	}

	res, err := h.sync.CleanupDuplicates(r.Context(), req.Options())
	h.writeResult(w, r, res, err)
}

func (h *Handler) MaterializeRecurring(w http.ResponseWriter, r *http.Request) {
	res, err := h.sync.MaterializeRecurring(r.Context())
	h.writeResult(w, r, res, err)
}

func (h *Handler) writeResult(w http.ResponseWriter, r *http.Request, res *manualsync.Result, err error) {
	if res != nil {
		h.notify(r.Context(), res)
	}

	if err != nil {
		h.writeError(w, r, res, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) notify(ctx context.Context, res *manualsync.Result) {
	if h.notifier == nil {
		return
	}

	if err := h.notifier.Notify(ctx, h.printer.Result(ctx, res)); err != nil {
		zerolog.Ctx(ctx).Err(err).Msg("failed to send report")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, res *manualsync.Result, err error) {
	code := statusCode(err)

	lg := zerolog.Ctx(r.Context())
	if code >= http.StatusInternalServerError {
		lg.Error().Err(err).Int("status", code).Msg("request failed")
	} else {
		lg.Warn().Err(err).Int("status", code).Msg("request rejected")
	}

	writeJSON(w, code, ErrorResponse{
		Error:  err.Error(),
		Result: res,
	})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrSyncInProgress):
		return http.StatusConflict
	case errors.Is(err, common.ErrOffline):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	b, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(err.Error()))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(b)
}

func queryBool(val string) bool {
	b, _ := strconv.ParseBool(val)

	return b
}
