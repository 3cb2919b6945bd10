package services

import (
	"context"
	"strings"
	"sync"

	"github.com/007PR/aura/internal/api"
	"github.com/007PR/aura/internal/models"
)

// PendingBatteryPercentage is shown while the battery fetch is in flight.
const PendingBatteryPercentage = 60

const (
	pendingBatteryLevel   = "Charging"
	pendingBatteryMessage = "Consulting the planets..."
)

type dashboardAPI interface {
	Battery(ctx context.Context, req api.BatteryRequest) (models.BatteryStatus, error)
	Roast(ctx context.Context, req api.RoastRequest) (models.RoastResult, error)
	Remedy(ctx context.Context, req api.RemedyRequest) (models.RemedyResult, error)
}

// DashboardSnapshot is a point-in-time copy of the dashboard state. Nil
// pointers mean that section is still loading or failed.
type DashboardSnapshot struct {
	Battery *models.BatteryStatus
	Roast   *models.RoastResult
	Remedy  *models.RemedyResult
	Err     string
}

// DashboardService aggregates the three home-screen fetches. A refresh
// runs them in parallel; results from a superseded refresh are dropped
// so a stale response can never overwrite a newer one.
type DashboardService struct {
	api dashboardAPI

	mu      sync.Mutex
	gen     uint64
	battery *models.BatteryStatus
	roast   *models.RoastResult
	remedy  *models.RemedyResult
	errs    [3]string
}

func NewDashboardService(api dashboardAPI) *DashboardService {
	return &DashboardService{api: api}
}

// PendingBattery is the placeholder shown before the first battery
// response lands.
func PendingBattery() models.BatteryStatus {
	return models.BatteryStatus{
		Percentage: PendingBatteryPercentage,
		Level:      pendingBatteryLevel,
		Message:    pendingBatteryMessage,
	}
}

// Refresh fetches battery, roast and remedy in parallel and blocks until
// all three settle. Partial failure keeps the sections that succeeded.
func (d *DashboardService) Refresh(ctx context.Context, user models.User) {
	d.mu.Lock()
	d.gen++
	gen := d.gen
	d.battery = nil
	d.roast = nil
	d.remedy = nil
	d.errs = [3]string{}
	d.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		battery, err := d.api.Battery(ctx, api.BatteryRequest{UserID: user.ID, Sign: user.Sign, DOB: user.DOB})
		d.deliver(gen, func() {
			if err != nil {
				d.errs[0] = errText(err, "Battery failed")
				return
			}
			d.battery = &battery
		})
	}()

	go func() {
		defer wg.Done()
		roast, err := d.api.Roast(ctx, api.RoastRequest{UserID: user.ID, Sign: user.Sign})
		d.deliver(gen, func() {
			if err != nil {
				d.errs[1] = errText(err, "Roast failed")
				return
			}
			d.roast = &roast
		})
	}()

	go func() {
		defer wg.Done()
		remedy, err := d.api.Remedy(ctx, api.RemedyRequest{UserID: user.ID, Sign: user.Sign, Concern: "general"})
		d.deliver(gen, func() {
			if err != nil {
				d.errs[2] = errText(err, "Remedy failed")
				return
			}
			d.remedy = &remedy
		})
	}()

	wg.Wait()
}

// deliver applies an update only if it belongs to the latest refresh.
func (d *DashboardService) deliver(gen uint64, apply func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return
	}
	apply()
}

// Snapshot returns a copy of the current dashboard state. Section errors
// are joined into a single display string.
func (d *DashboardService) Snapshot() DashboardSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := DashboardSnapshot{}
	if d.battery != nil {
		b := *d.battery
		snap.Battery = &b
	}
	if d.roast != nil {
		r := *d.roast
		snap.Roast = &r
	}
	if d.remedy != nil {
		r := *d.remedy
		snap.Remedy = &r
	}
	var parts []string
	for _, e := range d.errs {
		if e != "" {
			parts = append(parts, e)
		}
	}
	snap.Err = strings.Join(parts, " | ")
	return snap
}

func errText(err error, fallback string) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
