package server

import (
	"context"
	"log/slog"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// ProbeHealthChecker is healthy while its probe returns nil.
type ProbeHealthChecker struct {
	name  string
	probe func(ctx context.Context) error
}

func NewProbeHealthChecker(name string, probe func(ctx context.Context) error) *ProbeHealthChecker {
	return &ProbeHealthChecker{name: name, probe: probe}
}

func (hc *ProbeHealthChecker) Healthy(ctx context.Context) bool {
	if err := hc.probe(ctx); err != nil {
		slog.Error("Health probe failed", "probe", hc.name, "error", err)
		return false
	}
	return true
}
