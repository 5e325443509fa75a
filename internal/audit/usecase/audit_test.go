package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"auth-srv/internal/audit"
	"auth-srv/internal/audit/repository"
	"auth-srv/internal/model"
	"auth-srv/pkg/log"
	"auth-srv/pkg/paginator"
)

type fakeRepo struct {
	logs      []model.AuditLog
	createErr error
	listErr   error
}

func (f *fakeRepo) CreateAuditLog(_ context.Context, opt repository.CreateAuditLogOptions) (model.AuditLog, error) {
	if f.createErr != nil {
		return model.AuditLog{}, f.createErr
	}
	al := model.AuditLog{
		ID:        "generated",
		UserID:    opt.UserID,
		Email:     opt.Email,
		Action:    opt.Action,
		Success:   opt.Success,
		Detail:    opt.Detail,
		ClientIP:  opt.ClientIP,
		CreatedAt: time.Now(),
	}
	f.logs = append(f.logs, al)
	return al, nil
}

func (f *fakeRepo) ListAuditLogs(_ context.Context, opt repository.ListAuditLogsOptions) ([]model.AuditLog, int64, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}

	var filtered []model.AuditLog
	for _, al := range f.logs {
		if opt.Action == "" || string(al.Action) == opt.Action {
			filtered = append(filtered, al)
		}
	}
	total := int64(len(filtered))

	if opt.Offset >= total {
		return nil, total, nil
	}
	end := opt.Offset + opt.Limit
	if end > total {
		end = total
	}
	return filtered[opt.Offset:end], total, nil
}

type fakeProducer struct {
	published [][]byte
	err       error
}

func (f *fakeProducer) Publish(_, value []byte) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, value)
	return nil
}

func (f *fakeProducer) Close() error       { return nil }
func (f *fakeProducer) HealthCheck() error { return nil }

func TestRecord_PersistsAndPublishes(t *testing.T) {
	repo := &fakeRepo{}
	producer := &fakeProducer{}
	uc := New(log.NewNopLogger(), repo, producer)

	uc.Record(context.Background(), audit.RecordInput{
		UserID:  42,
		Email:   "alice@example.com",
		Action:  model.AuditActionTokenIssue,
		Success: true,
	})

	if len(repo.logs) != 1 {
		t.Fatalf("stored logs = %d, want 1", len(repo.logs))
	}
	if len(producer.published) != 1 {
		t.Fatalf("published events = %d, want 1", len(producer.published))
	}

	var event model.AuditLog
	if err := json.Unmarshal(producer.published[0], &event); err != nil {
		t.Fatalf("unmarshal published event: %v", err)
	}
	if event.UserID != 42 || event.Action != model.AuditActionTokenIssue {
		t.Errorf("published event = %+v", event)
	}
}

func TestRecord_SwallowsFailures(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("db down")}
	uc := New(log.NewNopLogger(), repo, &fakeProducer{})

	// must not panic or publish
	uc.Record(context.Background(), audit.RecordInput{Action: model.AuditActionLogin})

	repo2 := &fakeRepo{}
	uc2 := New(log.NewNopLogger(), repo2, &fakeProducer{err: errors.New("broker down")})
	uc2.Record(context.Background(), audit.RecordInput{Action: model.AuditActionLogin})
	if len(repo2.logs) != 1 {
		t.Errorf("record must persist even when publish fails, logs = %d", len(repo2.logs))
	}
}

func TestRecord_NilProducer(t *testing.T) {
	repo := &fakeRepo{}
	uc := New(log.NewNopLogger(), repo, nil)

	uc.Record(context.Background(), audit.RecordInput{Action: model.AuditActionLogout})
	if len(repo.logs) != 1 {
		t.Errorf("logs = %d, want 1", len(repo.logs))
	}
}

func TestList(t *testing.T) {
	repo := &fakeRepo{}
	uc := New(log.NewNopLogger(), repo, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		uc.Record(ctx, audit.RecordInput{UserID: int64(i), Action: model.AuditActionLogin, Success: true})
	}
	uc.Record(ctx, audit.RecordInput{UserID: 9, Action: model.AuditActionTokenVerify, Success: false})

	out, err := uc.List(ctx, model.Scope{UserID: 1}, audit.ListInput{
		PagQuery: paginator.PaginateQuery{Page: 1, Limit: 2},
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Paginator.Total != 4 {
		t.Errorf("Total = %d, want 4", out.Paginator.Total)
	}
	if len(out.Logs) != 2 {
		t.Errorf("page size = %d, want 2", len(out.Logs))
	}

	filtered, err := uc.List(ctx, model.Scope{UserID: 1}, audit.ListInput{
		Action:   string(model.AuditActionTokenVerify),
		PagQuery: paginator.PaginateQuery{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if filtered.Paginator.Total != 1 || len(filtered.Logs) != 1 {
		t.Errorf("filtered total = %d, page = %d", filtered.Paginator.Total, len(filtered.Logs))
	}
}

func TestList_InvalidAction(t *testing.T) {
	uc := New(log.NewNopLogger(), &fakeRepo{}, nil)

	_, err := uc.List(context.Background(), model.Scope{}, audit.ListInput{Action: "bogus"})
	if !errors.Is(err, audit.ErrInvalidAction) {
		t.Fatalf("got %v, want ErrInvalidAction", err)
	}
}
