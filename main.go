package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/windlab/turbinedash/data"
	"github.com/windlab/turbinedash/env"
	"github.com/windlab/turbinedash/sensors"

	logger "github.com/sirupsen/logrus"
)

const version = "WL-TurbineDash-1.0.1"

type turbinestation struct {
	s     *sensors.Sensors
	data  *data.TurbineData
	hub   *streamHub
	clock clockwork.Clock
	args  env.Args
}

var Prom_windspeed = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "windspeed",
		Help: "Current wind speed m/s",
	},
)

var Prom_windDirection = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "winddirection",
		Help: "Wind Direction Deg",
	},
)

var Prom_power = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "power_output",
		Help: "Instantaneous power output kW",
	},
)

var Prom_rotationPeriod = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "rotor_period",
		Help: "Rotor period, seconds per revolution",
	},
)

var Prom_bladeAngle = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "blade_angle",
		Help: "Blade pitch angle Deg",
	},
	[]string{"blade"},
)

var Prom_energy = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "cumulative_energy_kwh",
		Help: "Total energy generated kWh",
	},
)

// called by prometheus
func init() {
	logger.Infof("%v: Initialize prometheus...", time.Now().Format(time.RFC822))
	prometheus.MustRegister(
		Prom_windspeed,
		Prom_windDirection,
		Prom_power,
		Prom_rotationPeriod,
		Prom_bladeAngle,
		Prom_energy)
}

func main() {
	logger.Infof("Starting turbine dashboard [%v]", version)

	args := env.Args{}
	args.Test = flag.Bool("test", false, "test mode, fixed anemometer seed")
	args.Port = flag.Int("port", env.DefaultPort, "dashboard listen port")
	args.Seed = flag.Int64("seed", time.Now().UnixNano(), "seed for the simulated anemometer")
	flag.Parse()

	if *args.Test {
		logger.Info("TEST MODE")
		*args.Seed = 1
	}

	logger.Infof("%v: Initialize sensors...", time.Now().Format(time.RFC822))
	w := turbinestation{}
	w.args = args
	w.s = sensors.InitSensors(*args.Seed)
	w.data = data.CreateTurbineData()
	w.hub = newStreamHub()
	w.clock = clockwork.NewRealClock()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// start go routines
	go w.StartTurbineMonitor(ctx)
	go w.heartbeat(ctx)

	// start web service
	r := chi.NewRouter()
	r.Get("/", w.pageHandler)
	r.Get("/data", w.dataHandler)
	r.Get("/ws", w.hub.serveWs)
	r.Post("/override", w.overrideHandler)
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", *args.Port), Handler: r}

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down...")
		shCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		_ = srv.Shutdown(shCtx)
	}()

	logger.Info("Starting webservice...")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Errorf("Webservice failed [%v]", err)
		logger.Exit(1)
	}
	logger.Info("Exiting")
}

func (w *turbinestation) heartbeat(ctx context.Context) {
	logger.Info("Heartbeat started")
	ticker := w.clock.NewTicker(env.HeartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			logger.Infof("Heartbeat: ticks [%v] energy [%.3f] kWh clients [%v]",
				w.data.GetTicks(), w.data.GetCumulativeEnergy(), w.hub.ClientCount())
		}
	}
}
