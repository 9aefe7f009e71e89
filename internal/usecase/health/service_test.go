package health

import (
	"context"
	"errors"
	"testing"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type indexChecker struct {
	exists bool
	err    error
}

func (c indexChecker) IndexExists(context.Context, string) (bool, error) {
	return c.exists, c.err
}

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(pinger{}, indexChecker{exists: true})
	r := svc.Check(context.Background())
	if r.Status != Healthy {
		t.Errorf("Status = %q", r.Status)
	}
	if r.Checks["database"] != CheckOK || r.Checks["search_index"] != CheckOK {
		t.Errorf("Checks = %v", r.Checks)
	}
}

func TestCheck_DatabaseDown(t *testing.T) {
	svc := New(pinger{err: errors.New("refused")}, nil)
	r := svc.Check(context.Background())
	if r.Status != Degraded {
		t.Errorf("Status = %q", r.Status)
	}
	if r.Checks["database"] != CheckError {
		t.Errorf("Checks = %v", r.Checks)
	}
}

func TestCheck_MissingIndex(t *testing.T) {
	svc := New(pinger{}, indexChecker{exists: false})
	r := svc.Check(context.Background())
	if r.Status != Degraded {
		t.Errorf("Status = %q", r.Status)
	}
	if r.Checks["search_index"] != CheckError {
		t.Errorf("Checks = %v", r.Checks)
	}
}
