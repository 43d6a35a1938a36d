package impl

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"

	"vidtube/config"
	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"
	"vidtube/internal/infra/auth"
	"vidtube/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
		Auth: &config.AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 240 * time.Hour,
			BcryptCost:      4,
		},
	}
}

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	svc, err := auth.NewJWTService(newTestConfig())
	require.NoError(t, err)

	return svc
}

// writeTempFile creates a local upload candidate and returns its path.
func writeTempFile(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("content of "+name), 0o600))

	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

// counterValue sums a counter family, optionally restricted to one label value.
func counterValue(t *testing.T, reg *prometheus.Registry, name, labelValue string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if labelValue != "" && !slices.ContainsFunc(m.GetLabel(), func(l *dto.LabelPair) bool {
				return l.GetValue() == labelValue
			}) {
				continue
			}
			total += m.GetCounter().GetValue()
		}
	}

	return total
}

// --- Storage ---

type fakeStorage struct {
	mu         sync.Mutex
	uploaded   []string
	deleted    map[string]int
	uploadErrs map[string]error // keyed by local file base name
	deleteErrs map[string]error // keyed by remote id
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		deleted:    make(map[string]int),
		uploadErrs: make(map[string]error),
		deleteErrs: make(map[string]error),
	}
}

func (s *fakeStorage) Upload(_ context.Context, localPath string) (*entity.MediaAsset, error) {
	defer os.Remove(localPath)

	s.mu.Lock()
	defer s.mu.Unlock()

	base := filepath.Base(localPath)
	if err := s.uploadErrs[base]; err != nil {
		return nil, err
	}
	remoteID := "remote/" + base
	s.uploaded = append(s.uploaded, remoteID)

	return &entity.MediaAsset{
		RemoteID:     remoteID,
		URL:          "https://cdn.test/" + remoteID,
		ResourceType: entity.ResourceTypeImage,
	}, nil
}

func (s *fakeStorage) Delete(_ context.Context, remoteID string, _ entity.ResourceType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleted[remoteID]++

	return s.deleteErrs[remoteID]
}

func (s *fakeStorage) deleteCount(remoteID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deleted[remoteID]
}

func (s *fakeStorage) totalDeletes() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, c := range s.deleted {
		n += c
	}

	return n
}

// --- Users ---

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*entity.User
	createErr error
	updateErr error
	clearErr  error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	c.WatchHistory = slices.Clone(u.WatchHistory)
	if u.Avatar != nil {
		a := *u.Avatar
		c.Avatar = &a
	}
	if u.CoverImage != nil {
		a := *u.CoverImage
		c.CoverImage = &a
	}

	return &c
}

func (r *fakeUserRepo) put(u *entity.User) *entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = cloneUser(u)

	return u
}

func (r *fakeUserRepo) get(id uuid.UUID) *entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil
	}

	return cloneUser(u)
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if u := r.get(id); u != nil {
		return u, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsernameOrEmail(_ context.Context, username, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			return cloneUser(u), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	r.put(user)

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}
	next := cloneUser(user)
	next.RefreshTokenHash = stored.RefreshTokenHash
	next.WatchHistory = stored.WatchHistory
	r.users[user.ID] = next

	return nil
}

func (r *fakeUserRepo) UpdateRefreshFingerprint(_ context.Context, id uuid.UUID, expected, next string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok || u.RefreshTokenHash != expected {
		return repository.ErrRefreshFingerprintMismatch
	}
	u.RefreshTokenHash = next

	return nil
}

func (r *fakeUserRepo) ClearRefreshFingerprint(_ context.Context, id uuid.UUID) error {
	if r.clearErr != nil {
		return r.clearErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.RefreshTokenHash = ""

	return nil
}

func (r *fakeUserRepo) AddToWatchHistory(_ context.Context, userID, videoID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return false, repository.ErrUserNotFound
	}
	if u.HasWatched(videoID) {
		return false, nil
	}
	u.WatchHistory = append(u.WatchHistory, videoID)

	return true, nil
}

// --- Collections ---

type fakeCollection[T entity.OwnedResource] struct {
	mu        sync.Mutex
	items     map[uuid.UUID]T
	order     []uuid.UUID
	clone     func(T) T
	setID     func(T, uuid.UUID)
	createErr error
	updateErr error
}

func newFakeCollection[T entity.OwnedResource](clone func(T) T, setID func(T, uuid.UUID)) *fakeCollection[T] {
	return &fakeCollection[T]{items: make(map[uuid.UUID]T), clone: clone, setID: setID}
}

func (c *fakeCollection[T]) FindByID(_ context.Context, id uuid.UUID) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[id]
	if !ok {
		var zero T

		return zero, repository.ErrResourceNotFound
	}

	return c.clone(item), nil
}

func (c *fakeCollection[T]) Create(_ context.Context, item T) error {
	if c.createErr != nil {
		return c.createErr
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if item.ResourceID() == uuid.Nil {
		c.setID(item, uuid.New())
	}
	c.items[item.ResourceID()] = c.clone(item)
	c.order = append(c.order, item.ResourceID())

	return nil
}

func (c *fakeCollection[T]) FindByIDAndUpdate(_ context.Context, id uuid.UUID, mutate func(T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	item, ok := c.items[id]
	if !ok {
		return zero, repository.ErrResourceNotFound
	}
	working := c.clone(item)
	if err := mutate(working); err != nil {
		return zero, err
	}
	if c.updateErr != nil {
		return zero, c.updateErr
	}
	c.items[id] = c.clone(working)

	return working, nil
}

func (c *fakeCollection[T]) FindByIDAndDelete(_ context.Context, id uuid.UUID) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[id]
	if !ok {
		var zero T

		return zero, repository.ErrResourceNotFound
	}
	delete(c.items, id)

	return item, nil
}

func (c *fakeCollection[T]) all() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, 0, len(c.items))
	for _, id := range c.order {
		if item, ok := c.items[id]; ok {
			out = append(out, c.clone(item))
		}
	}

	return out
}

type fakeVideoRepo struct {
	*fakeCollection[*entity.Video]
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{newFakeCollection(
		func(v *entity.Video) *entity.Video { c := *v; return &c },
		func(v *entity.Video, id uuid.UUID) { v.ID = id },
	)}
}

func (r *fakeVideoRepo) List(_ context.Context, filter repository.VideoFilter) (*repository.PageResult[*entity.Video], error) {
	var items []*entity.Video
	for _, v := range r.all() {
		if filter.OwnerID != nil && v.OwnerID != *filter.OwnerID {
			continue
		}
		items = append(items, v)
	}
	page := filter.Page.Normalize()

	return &repository.PageResult[*entity.Video]{Items: items, Total: int64(len(items)), Page: page.Page, Limit: page.Limit}, nil
}

func (r *fakeVideoRepo) IncrementViews(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	return r.FindByIDAndUpdate(ctx, id, func(v *entity.Video) error {
		v.Views++

		return nil
	})
}

type fakeCommentRepo struct {
	*fakeCollection[*entity.Comment]
	deleteByVideoErr error
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{fakeCollection: newFakeCollection(
		func(c *entity.Comment) *entity.Comment { cc := *c; return &cc },
		func(c *entity.Comment, id uuid.UUID) { c.ID = id },
	)}
}

func (r *fakeCommentRepo) ListByVideo(_ context.Context, videoID uuid.UUID, page repository.Page) (*repository.PageResult[*entity.Comment], error) {
	var items []*entity.Comment
	for _, c := range r.all() {
		if c.VideoID == videoID {
			items = append(items, c)
		}
	}
	page = page.Normalize()

	return &repository.PageResult[*entity.Comment]{Items: items, Total: int64(len(items)), Page: page.Page, Limit: page.Limit}, nil
}

func (r *fakeCommentRepo) DeleteByVideo(ctx context.Context, videoID uuid.UUID) error {
	if r.deleteByVideoErr != nil {
		return r.deleteByVideoErr
	}
	for _, c := range r.all() {
		if c.VideoID == videoID {
			if _, err := r.FindByIDAndDelete(ctx, c.ID); err != nil {
				return err
			}
		}
	}

	return nil
}

type fakeTweetRepo struct {
	*fakeCollection[*entity.Tweet]
}

func newFakeTweetRepo() *fakeTweetRepo {
	return &fakeTweetRepo{newFakeCollection(
		func(t *entity.Tweet) *entity.Tweet { c := *t; return &c },
		func(t *entity.Tweet, id uuid.UUID) { t.ID = id },
	)}
}

func (r *fakeTweetRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Tweet, error) {
	var out []*entity.Tweet
	for _, t := range r.all() {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}

	return out, nil
}

type fakePlaylistRepo struct {
	*fakeCollection[*entity.Playlist]
}

func newFakePlaylistRepo() *fakePlaylistRepo {
	return &fakePlaylistRepo{newFakeCollection(
		func(p *entity.Playlist) *entity.Playlist { c := *p; c.VideoIDs = slices.Clone(p.VideoIDs); return &c },
		func(p *entity.Playlist, id uuid.UUID) { p.ID = id },
	)}
}

func (r *fakePlaylistRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	var out []*entity.Playlist
	for _, p := range r.all() {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *fakePlaylistRepo) RemoveVideoEverywhere(ctx context.Context, videoID uuid.UUID) error {
	for _, p := range r.all() {
		if _, err := r.FindByIDAndUpdate(ctx, p.ID, func(p *entity.Playlist) error {
			p.RemoveVideo(videoID)

			return nil
		}); err != nil {
			return err
		}
	}

	return nil
}

// --- Transactions ---

type fakeRepoFactory struct {
	users     *fakeUserRepo
	videos    *fakeVideoRepo
	comments  *fakeCommentRepo
	playlists *fakePlaylistRepo
}

func (f *fakeRepoFactory) NewUserRepository() repository.UserRepository         { return f.users }
func (f *fakeRepoFactory) NewVideoRepository() repository.VideoRepository       { return f.videos }
func (f *fakeRepoFactory) NewCommentRepository() repository.CommentRepository   { return f.comments }
func (f *fakeRepoFactory) NewPlaylistRepository() repository.PlaylistRepository { return f.playlists }

// fakeTxManager runs fn directly; it does not roll back.
type fakeTxManager struct {
	factory *fakeRepoFactory
	calls   int
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	tm.calls++

	return fn(tm.factory)
}

// --- Events ---

type fakePublisher struct {
	mu     sync.Mutex
	events []*service.MediaEvent
	err    error
}

func (p *fakePublisher) PublishMediaEvent(_ context.Context, event *service.MediaEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)

	return nil
}

func (p *fakePublisher) Close() error { return nil }

func (p *fakePublisher) types() []service.MediaEventType {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]service.MediaEventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}

	return out
}

type fakeQRCode struct{}

func (fakeQRCode) GenerateVideoShareQR(videoID uuid.UUID) ([]byte, error) {
	return []byte("qr:" + videoID.String()), nil
}

func (fakeQRCode) ParseVideoShareURL(string) (uuid.UUID, error) {
	return uuid.Nil, errors.New("not implemented")
}

func newTestOrchestrator(storage service.MediaStorage) (*mediaOrchestrator, *metrics.Metrics) {
	m := metrics.New()
	orch := NewMediaOrchestrator(MediaOrchestratorParams{
		Storage: storage,
		Metrics: m,
		Logger:  newDiscardLogger(),
	})

	return orch.(*mediaOrchestrator), m
}
