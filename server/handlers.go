package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/aerovlm/config"
	"github.com/katalvlaran/aerovlm/report"
	"github.com/katalvlaran/aerovlm/store"
	"github.com/katalvlaran/aerovlm/sweep"
	"github.com/katalvlaran/aerovlm/vlm"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handlers holds the API dependencies.
type handlers struct {
	repo       store.Repository
	log        logrus.FieldLogger
	maxWorkers int
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return false
	}

	return true
}

func (h *handlers) solve(req CaseRequest) (*vlm.Result, *config.Case, error) {
	c, err := req.toCase()
	if err != nil {
		return nil, nil, err
	}
	res, err := vlm.Solve(c.Geometry, c.Segments, c.Panels, c.Flow,
		vlm.WithPropellers(c.Propellers...),
		vlm.WithLogger(h.log))
	if err != nil {
		return nil, c, err
	}

	return res, c, nil
}

// Solve handles POST /api/solve.
func (h *handlers) Solve(w http.ResponseWriter, r *http.Request) {
	var req CaseRequest
	if !decode(w, r, &req) {
		return
	}
	res, _, err := h.solve(req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newSolveResponse(res))
}

// runSweep runs req and stores the table when asked.
func (h *handlers) runSweep(ctx context.Context, req SweepRequest, progress func(sweep.Progress)) (*SweepResponse, error) {
	c, err := req.toCase()
	if err != nil {
		return nil, err
	}
	grid, err := req.grid()
	if err != nil {
		return nil, err
	}
	workers := h.maxWorkers
	if req.Workers > 0 && req.Workers < workers {
		workers = req.Workers
	}
	table, err := sweep.Run(ctx, c.SweepCase(), grid,
		sweep.WithWorkers(workers),
		sweep.WithProgress(progress),
		sweep.WithLogger(h.log))
	if err != nil {
		return nil, err
	}

	resp := &SweepResponse{Table: table}
	if req.Save {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("sweep %s", time.Now().UTC().Format(time.RFC3339))
		}
		if resp.ID, err = h.repo.SaveSweep(ctx, name, table); err != nil {
			return nil, err
		}
		h.log.WithFields(logrus.Fields{"id": resp.ID, "rows": len(table.Rows)}).Info("server: sweep stored")
	}

	return resp, nil
}

// Sweep handles POST /api/sweep.
func (h *handlers) Sweep(w http.ResponseWriter, r *http.Request) {
	var req SweepRequest
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.runSweep(r.Context(), req, nil)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListSweeps handles GET /api/sweeps.
func (h *handlers) ListSweeps(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.ListSweeps(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if list == nil {
		list = []store.Summary{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *handlers) record(w http.ResponseWriter, r *http.Request) (*store.Record, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid sweep id")
		return nil, false
	}
	rec, err := h.repo.GetSweep(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return nil, false
	}

	return rec, true
}

// GetSweep handles GET /api/sweeps/{id}.
func (h *handlers) GetSweep(w http.ResponseWriter, r *http.Request) {
	if rec, ok := h.record(w, r); ok {
		writeJSON(w, http.StatusOK, rec)
	}
}

// SweepXLSX handles GET /api/sweeps/{id}/xlsx.
func (h *handlers) SweepXLSX(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.record(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := report.WriteSweepXLSX(&buf, rec.Table); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"sweep-%d.xlsx\"", rec.ID))
	_, _ = buf.WriteTo(w)
}

// ReportPDF handles POST /api/report/pdf.
func (h *handlers) ReportPDF(w http.ResponseWriter, r *http.Request) {
	var req CaseRequest
	if !decode(w, r, &req) {
		return
	}
	res, c, err := h.solve(req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	var buf bytes.Buffer
	if err = report.WriteSolvePDF(&buf, report.SolveSummary{
		Title:    c.Name,
		Geometry: c.Geometry,
		Flow:     c.Flow,
		Panels:   c.Panels,
		Result:   res,
	}); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	_, _ = buf.WriteTo(w)
}
