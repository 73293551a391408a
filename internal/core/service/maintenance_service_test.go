package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/cbhud/trackrig/internal/core/domain"
	"github.com/cbhud/trackrig/internal/core/ports"
)

type stubMaintenanceRepo struct {
	logs   []domain.MaintenanceLog
	nextID int
}

func (r *stubMaintenanceRepo) Create(_ context.Context, log *domain.MaintenanceLog) (*domain.MaintenanceLog, error) {
	r.nextID++
	created := *log
	created.ID = strconv.Itoa(r.nextID)
	r.logs = append(r.logs, created)
	return &created, nil
}

func (r *stubMaintenanceRepo) ListByWorkstation(_ context.Context, workstationID string) ([]domain.MaintenanceLog, error) {
	out := make([]domain.MaintenanceLog, 0)
	for _, l := range r.logs {
		if l.WorkstationID == workstationID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubMaintenanceRepo) List(_ context.Context) ([]domain.MaintenanceLog, error) {
	return append([]domain.MaintenanceLog(nil), r.logs...), nil
}

func TestMaintenanceService_Record(t *testing.T) {
	workstations := newStubWorkstationRepo()
	ws, _ := workstations.Create(context.Background(), &domain.Workstation{Name: "rig-1", Status: domain.WorkstationActive})
	svc := NewMaintenanceService(&stubMaintenanceRepo{}, workstations)

	log, err := svc.Record(context.Background(), ports.RecordMaintenanceInput{
		WorkstationID: ws.ID,
		Type:          domain.MaintenanceType{Name: "dust cleaning", IntervalDays: 90, Active: true},
		PerformedBy:   "user-1",
		Notes:         "rear fan replaced too",
	})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if log.PerformedAt.IsZero() {
		t.Fatalf("expected performed_at to default to now")
	}
	if log.PerformedBy != "user-1" {
		t.Fatalf("unexpected performer: %s", log.PerformedBy)
	}
}

func TestMaintenanceService_Record_Invalid(t *testing.T) {
	workstations := newStubWorkstationRepo()
	ws, _ := workstations.Create(context.Background(), &domain.Workstation{Name: "rig-2", Status: domain.WorkstationActive})
	svc := NewMaintenanceService(&stubMaintenanceRepo{}, workstations)

	cases := []ports.RecordMaintenanceInput{
		{Type: domain.MaintenanceType{Name: "x", Active: true}, PerformedBy: "u"},
		{WorkstationID: ws.ID, PerformedBy: "u"},
		{WorkstationID: ws.ID, Type: domain.MaintenanceType{Name: "x", Active: true}},
		{WorkstationID: ws.ID, Type: domain.MaintenanceType{Name: "retired type", Active: false}, PerformedBy: "u"},
	}
	for _, in := range cases {
		if _, err := svc.Record(context.Background(), in); err != ErrInvalidMaintenanceLog {
			t.Fatalf("input %+v: expected ErrInvalidMaintenanceLog, got %v", in, err)
		}
	}
}

func TestMaintenanceService_Record_UnknownWorkstation(t *testing.T) {
	svc := NewMaintenanceService(&stubMaintenanceRepo{}, newStubWorkstationRepo())

	_, err := svc.Record(context.Background(), ports.RecordMaintenanceInput{
		WorkstationID: "missing",
		Type:          domain.MaintenanceType{Name: "bios update", Active: true},
		PerformedBy:   "user-1",
		PerformedAt:   time.Now().UTC(),
	})
	if err != domain.ErrWorkstationNotFound {
		t.Fatalf("expected ErrWorkstationNotFound, got %v", err)
	}
}

func TestMaintenanceService_ListByWorkstation(t *testing.T) {
	workstations := newStubWorkstationRepo()
	a, _ := workstations.Create(context.Background(), &domain.Workstation{Name: "rig-a", Status: domain.WorkstationActive})
	b, _ := workstations.Create(context.Background(), &domain.Workstation{Name: "rig-b", Status: domain.WorkstationActive})
	svc := NewMaintenanceService(&stubMaintenanceRepo{}, workstations)

	typ := domain.MaintenanceType{Name: "thermal paste", IntervalDays: 365, Active: true}
	if _, err := svc.Record(context.Background(), ports.RecordMaintenanceInput{WorkstationID: a.ID, Type: typ, PerformedBy: "u1"}); err != nil {
		t.Fatalf("record a: %v", err)
	}
	if _, err := svc.Record(context.Background(), ports.RecordMaintenanceInput{WorkstationID: b.ID, Type: typ, PerformedBy: "u1"}); err != nil {
		t.Fatalf("record b: %v", err)
	}

	logs, err := svc.ListByWorkstation(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log for %s, got %d", a.ID, len(logs))
	}
}
