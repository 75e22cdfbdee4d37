package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/withsocio/socio-backend/internal/domain"
	"github.com/withsocio/socio-backend/internal/dto"
	"github.com/withsocio/socio-backend/internal/repository"
)

type fakeApplicationRepo struct {
	apps      []*domain.Application
	createErr error
	nextID    int
}

func (r *fakeApplicationRepo) Create(app *domain.Application) (*domain.Application, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	if app.ID == "" {
		app.ID = strings.Repeat("0", r.nextID) // distinct ids, insertion order
	}
	if app.Status == "" {
		app.Status = domain.StatusPending
	}
	r.apps = append(r.apps, app)
	return app, nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*domain.Application, error) {
	for _, a := range r.apps {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrApplicationNotFound
}

// List mimics created_at DESC: last insert first.
func (r *fakeApplicationRepo) List(limit, offset int) ([]domain.Application, int64, error) {
	var ordered []domain.Application
	for i := len(r.apps) - 1; i >= 0; i-- {
		ordered = append(ordered, *r.apps[i])
	}
	total := int64(len(ordered))
	if offset >= len(ordered) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(ordered) {
		end = len(ordered)
	}
	return ordered[offset:end], total, nil
}

func (r *fakeApplicationRepo) ListAll() ([]domain.Application, error) {
	out, _, err := r.List(len(r.apps), 0)
	return out, err
}

func (r *fakeApplicationRepo) ListByPreference(preference string) ([]domain.Application, error) {
	all, _ := r.ListAll()
	var out []domain.Application
	for _, a := range all {
		if (a.Preference1 != nil && *a.Preference1 == preference) ||
			(a.Preference2 != nil && *a.Preference2 == preference) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(id, status string) error {
	for _, a := range r.apps {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return repository.ErrApplicationNotFound
}

type fakeUploader struct {
	err     error
	uploads []string
}

func (u *fakeUploader) UploadBytes(ctx context.Context, folder, filename string, b []byte) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.uploads = append(u.uploads, folder+"/"+filename)
	return "https://cdn.example.com/" + folder + "/" + filename, nil
}

type fakeProducer struct {
	err      error
	messages [][]byte
}

func (p *fakeProducer) PublishMessage(key, value []byte) error {
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, value)
	return nil
}

func validForm() dto.ApplicationForm {
	return dto.ApplicationForm{
		FullName:     "Jane Doe",
		Email:        "jane@x.com",
		RoleInterest: "Design",
		CampusID:     "bangaloreid",
	}
}

func TestSubmitHappyPath(t *testing.T) {
	repo := &fakeApplicationRepo{}
	up := &fakeUploader{}
	prod := &fakeProducer{}
	svc := NewApplicationService(repo, up, prod, "resumes")

	created, err := svc.Submit(context.Background(), validForm(), "cv.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if created.Status != domain.StatusPending {
		t.Fatalf("status = %q, want pending", created.Status)
	}
	if !strings.HasPrefix(created.ResumeURL, "https://cdn.example.com/resumes/bangaloreid_") {
		t.Fatalf("resume url = %q", created.ResumeURL)
	}
	if !strings.HasSuffix(created.ResumeURL, "_Jane_Doe.pdf") {
		t.Fatalf("resume url should end with sanitized name, got %q", created.ResumeURL)
	}
	if created.ResumeFileName != "cv.pdf" {
		t.Fatalf("resume file name = %q", created.ResumeFileName)
	}
	if len(prod.messages) != 1 {
		t.Fatalf("published %d events, want 1", len(prod.messages))
	}
}

func TestSubmitMissingRequired(t *testing.T) {
	svc := NewApplicationService(&fakeApplicationRepo{}, &fakeUploader{}, &fakeProducer{}, "resumes")

	form := validForm()
	form.Email = ""
	if _, err := svc.Submit(context.Background(), form, "cv.pdf", []byte("x")); err != ErrMissingRequired {
		t.Fatalf("missing email: err = %v", err)
	}
	if _, err := svc.Submit(context.Background(), validForm(), "cv.pdf", nil); err != ErrMissingRequired {
		t.Fatalf("missing resume: err = %v", err)
	}
}

func TestSubmitUploadFailureAborts(t *testing.T) {
	repo := &fakeApplicationRepo{}
	up := &fakeUploader{err: errors.New("bucket down")}
	svc := NewApplicationService(repo, up, &fakeProducer{}, "resumes")

	if _, err := svc.Submit(context.Background(), validForm(), "cv.pdf", []byte("x")); err == nil {
		t.Fatal("expected error when upload fails")
	}
	if len(repo.apps) != 0 {
		t.Fatal("no row should be inserted after a failed upload")
	}
}

func TestSubmitInsertFailureAborts(t *testing.T) {
	repo := &fakeApplicationRepo{createErr: errors.New("db down")}
	prod := &fakeProducer{}
	svc := NewApplicationService(repo, &fakeUploader{}, prod, "resumes")

	if _, err := svc.Submit(context.Background(), validForm(), "cv.pdf", []byte("x")); err == nil {
		t.Fatal("expected error when insert fails")
	}
	if len(prod.messages) != 0 {
		t.Fatal("no event should be published after a failed insert")
	}
}

func TestSubmitPublishFailureStillSucceeds(t *testing.T) {
	prod := &fakeProducer{err: errors.New("broker down")}
	svc := NewApplicationService(&fakeApplicationRepo{}, &fakeUploader{}, prod, "resumes")

	created, err := svc.Submit(context.Background(), validForm(), "cv.pdf", []byte("x"))
	if err != nil {
		t.Fatalf("confirmation event failure must not fail the submission: %v", err)
	}
	if created == nil || created.ID == "" {
		t.Fatal("record should still be created")
	}
}

func TestListClamps(t *testing.T) {
	repo := &fakeApplicationRepo{}
	svc := NewApplicationService(repo, &fakeUploader{}, &fakeProducer{}, "resumes")

	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, 20},
		{-3, -1, 1, 20},
		{2, 50, 2, 50},
		{1, 101, 1, 100},
	}
	for _, tc := range cases {
		_, _, page, limit, err := svc.List(tc.page, tc.limit)
		if err != nil {
			t.Fatalf("List(%d,%d): %v", tc.page, tc.limit, err)
		}
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Fatalf("List(%d,%d) clamped to (%d,%d), want (%d,%d)",
				tc.page, tc.limit, page, limit, tc.wantPage, tc.wantLimit)
		}
	}
}

func TestListPagesAreDisjointAndOrdered(t *testing.T) {
	repo := &fakeApplicationRepo{}
	svc := NewApplicationService(repo, &fakeUploader{}, &fakeProducer{}, "resumes")

	for i := 0; i < 50; i++ {
		_, err := svc.Submit(context.Background(), validForm(), "cv.pdf", []byte("x"))
		if err != nil {
			t.Fatal(err)
		}
	}

	page1, total, _, _, err := svc.List(1, 20)
	if err != nil {
		t.Fatal(err)
	}
	page2, _, _, _, err := svc.List(2, 20)
	if err != nil {
		t.Fatal(err)
	}
	if total != 50 {
		t.Fatalf("total = %d, want 50", total)
	}

	seen := make(map[string]bool)
	for _, a := range page1 {
		seen[a.ID] = true
	}
	for _, a := range page2 {
		if seen[a.ID] {
			t.Fatalf("id %s appears on both pages", a.ID)
		}
	}

	wide, _, _, _, err := svc.List(1, 40)
	if err != nil {
		t.Fatal(err)
	}
	combined := append(append([]domain.Application{}, page1...), page2...)
	if len(wide) != len(combined) {
		t.Fatalf("len(wide) = %d, want %d", len(wide), len(combined))
	}
	for i := range wide {
		if wide[i].ID != combined[i].ID {
			t.Fatalf("order mismatch at %d: %s vs %s", i, wide[i].ID, combined[i].ID)
		}
	}
}

func TestUpdateStatusWriteThenRead(t *testing.T) {
	repo := &fakeApplicationRepo{}
	svc := NewApplicationService(repo, &fakeUploader{}, &fakeProducer{}, "resumes")

	created, err := svc.Submit(context.Background(), validForm(), "cv.pdf", []byte("x"))
	if err != nil {
		t.Fatal(err)
	}

	for _, status := range []string{
		domain.StatusReviewed,
		domain.StatusShortlisted,
		domain.StatusRejected,
		domain.StatusHired,
		domain.StatusPending, // transitions are free, any state to any state
	} {
		if err := svc.UpdateStatus(created.ID, status); err != nil {
			t.Fatalf("UpdateStatus(%s): %v", status, err)
		}
		got, err := svc.GetByID(created.ID)
		if err != nil {
			t.Fatal(err)
		}
		if got.Status != status {
			t.Fatalf("read back %q after writing %q", got.Status, status)
		}
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	svc := NewApplicationService(&fakeApplicationRepo{}, &fakeUploader{}, &fakeProducer{}, "resumes")

	if err := svc.UpdateStatus("", domain.StatusReviewed); err != ErrMissingRequired {
		t.Fatalf("missing id: %v", err)
	}
	if err := svc.UpdateStatus("some-id", "archived"); err != ErrInvalidStatus {
		t.Fatalf("unknown status: %v", err)
	}
	if err := svc.UpdateStatus("missing-id", domain.StatusReviewed); !errors.Is(err, repository.ErrApplicationNotFound) {
		t.Fatalf("unknown id: %v", err)
	}
}
