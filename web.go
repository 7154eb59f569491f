package main

import (
	_ "embed"
	"encoding/json"
	"net/http"

	logger "github.com/sirupsen/logrus"
)

//go:embed static/index.html
var dashboardPage []byte

func (w *turbinestation) pageHandler(rw http.ResponseWriter, r *http.Request) {
	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = rw.Write(dashboardPage)
}

func (w *turbinestation) dataHandler(rw http.ResponseWriter, r *http.Request) {
	js, err := json.Marshal(w.data.Snapshot())
	if err != nil {
		logger.Errorf("JSON error [%v]", err)
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	_, _ = rw.Write(js) // not much we can do if this fails
}

type overrideRequest struct {
	WindSpeed float64 `json:"windSpeed_ms"`
}

// overrideHandler applies the dashboard slider. Warnings and the rotor
// period reflect the new speed immediately; the next tick draws a
// fresh reading and overwrites it.
func (w *turbinestation) overrideHandler(rw http.ResponseWriter, r *http.Request) {
	req := overrideRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Errorf("Bad override request [%v]", err)
		http.Error(rw, err.Error(), http.StatusBadRequest)
		return
	}

	applied := w.data.SetWindSpeed(req.WindSpeed)
	logger.Infof("Manual override: wind speed set to [%v]", applied)
	w.publish()

	js, err := json.Marshal(w.data.Snapshot())
	if err != nil {
		logger.Errorf("JSON error [%v]", err)
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	_, _ = rw.Write(js)
}
