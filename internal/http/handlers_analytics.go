package http

import (
	"encoding/json"
	"net/http"

	"kharcha/internal/core"
	applog "kharcha/internal/log"
)

// handleAnalytics renders the monthly-by-category totals partial.
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	months, err := s.monthlyTotals(r)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Analytics aggregation error", applog.FieldError, err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Could not load analytics</div>`))
		return
	}

	type row struct {
		Label string
		Cells []string
		Total string
	}
	data := struct {
		Categories []core.Category
		Rows       []row
	}{Categories: core.Categories()}

	for _, mt := range months {
		entry := row{Label: mt.Label, Total: formatRupees(mt.Total())}
		for _, c := range core.Categories() {
			entry.Cells = append(entry.Cells, formatRupees(mt.Totals[c]))
		}
		data.Rows = append(data.Rows, entry)
	}

	if err := s.templates.ExecuteTemplate(w, "analytics.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Analytics template error", applog.FieldError, err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Could not render analytics</div>`))
	}
}

// handleAnalyticsJSON serves the same aggregate for the chart script.
func (s *Server) handleAnalyticsJSON(w http.ResponseWriter, r *http.Request) {
	months, err := s.monthlyTotals(r)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Analytics aggregation error", applog.FieldError, err)
		http.Error(w, "could not load analytics", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if months == nil {
		months = []core.MonthlyTotal{}
	}
	if err := json.NewEncoder(w).Encode(months); err != nil {
		s.logger.ErrorContext(r.Context(), "Analytics encode error", applog.FieldError, err)
	}
}

func (s *Server) monthlyTotals(r *http.Request) ([]core.MonthlyTotal, error) {
	expenses, err := s.backend.Expenses(r.Context())
	if err != nil {
		return nil, err
	}
	return core.AggregateMonthly(expenses), nil
}
