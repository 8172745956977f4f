package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/preston-bernstein/roto-auction-service/internal/domain/players"
	"github.com/preston-bernstein/roto-auction-service/internal/logging"
	"github.com/preston-bernstein/roto-auction-service/internal/projections"
)

// maxUploadBytes caps projection uploads; a full season export is well
// under a megabyte.
const maxUploadBytes = 8 << 20

// UploadHitting ingests a hitting projections CSV and revalues the pool.
func (h *Handler) UploadHitting(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.upload(w, r, players.TypeHitter)
}

// UploadPitching ingests a pitching projections CSV and revalues the pool.
func (h *Handler) UploadPitching(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.upload(w, r, players.TypePitcher)
}

func (h *Handler) upload(w nethttp.ResponseWriter, r *nethttp.Request, side players.Type) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	body, filename, err := readUpload(r)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}

	if header, err := csv.NewReader(bytes.NewReader(body)).Read(); err == nil {
		if detected := projections.DetectSide(header); detected != side {
			writeError(w, r, nethttp.StatusBadRequest,
				fmt.Sprintf("csv columns look like a %s file, not %s", detected, side), h.logger)
			return
		}
	}

	pool, report, err := projections.Parse(bytes.NewReader(body), side, h.cfg)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}

	if h.files != nil {
		if _, err := h.files.Save(side, filename, body); err != nil {
			logging.Warn(logger, "could not persist uploaded projections", slog.String("file", filename))
		}
	}

	if err := h.valuations.ReplaceSide(side, pool); err != nil {
		writeError(w, r, nethttp.StatusUnprocessableEntity, err.Error(), h.logger)
		return
	}

	// Keeper names were linked against the old pool; relink so IDs track
	// the fresh projections.
	h.keepers.Link()

	writeJSON(w, nethttp.StatusOK, map[string]any{
		"side":    string(side),
		"loaded":  report.Loaded,
		"skipped": report.Skipped,
		"errors":  report.Errors,
	}, logger)
}

// ListProjections reports the CSVs retained on disk.
func (h *Handler) ListProjections(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.files == nil {
		writeJSON(w, nethttp.StatusOK, map[string]any{"files": []projections.SavedFile{}}, h.logger)
		return
	}
	files, err := h.files.List()
	if err != nil {
		writeError(w, r, nethttp.StatusInternalServerError, "could not list projections", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"files": files}, h.logger)
}

// DeleteProjection removes one persisted CSV (DELETE /projections/{filename}).
// The in-memory pool is untouched; only the restart copy is dropped.
func (h *Handler) DeleteProjection(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodDelete {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/projections/")
	if name == "" || h.files == nil {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	if err := h.files.Delete(name); err != nil {
		writeError(w, r, nethttp.StatusNotFound, err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"deleted": name}, loggerFromContext(r, h.logger))
}

// readUpload accepts either a raw CSV body or a multipart form with a
// "file" field, returning the bytes and a best-effort original filename.
func readUpload(r *nethttp.Request) ([]byte, string, error) {
	r.Body = nethttp.MaxBytesReader(nil, r.Body, maxUploadBytes)

	ct := r.Header.Get("Content-Type")
	if len(ct) >= 19 && ct[:19] == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, "", err
		}
		f, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		body, err := io.ReadAll(f)
		if err != nil {
			return nil, "", err
		}
		return body, header.Filename, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, "", err
	}
	return body, "upload.csv", nil
}
