package services

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/pagination"
)

var nowFn = time.Now

// In-memory fakes over the repository interfaces. They mirror the
// contracts the real implementations uphold (sentinel errors, scoped
// predicates, conditional updates) so services can be tested without a
// database.

type fakeUserRepo struct {
	mu               sync.Mutex
	users            map[string]*models.User
	updateCompanyErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) add(u *models.User) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	r.users[u.ID] = u
	return u
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateCompanyName(userID, companyName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateCompanyErr != nil {
		return r.updateCompanyErr
	}
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.CompanyName = companyName
	return nil
}

func (r *fakeUserRepo) SetActive(userID string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.IsActive = active
	return nil
}

func (r *fakeUserRepo) SoftDelete(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok || u.DeletedAt != nil {
		return repositories.ErrUserNotFound
	}
	now := nowFn()
	u.DeletedAt = &now
	u.IsActive = false
	return nil
}

func (r *fakeUserRepo) RecoverByEmail(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			u.DeletedAt = nil
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (r *fakeUserRepo) HardDelete(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) PurgeDeletedBefore(cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var purged int64
	for id, u := range r.users {
		if u.DeletedAt != nil && !u.DeletedAt.After(cutoff) && !u.IsActive {
			delete(r.users, id)
			purged++
		}
	}
	return purged, nil
}

func (r *fakeUserRepo) FindByRole(role models.UserRole, p pagination.Params) ([]models.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []models.User
	for _, u := range r.users {
		if u.Role == role && u.DeletedAt == nil {
			all = append(all, *u)
		}
	}
	return paginate(all, p)
}

func (r *fakeUserRepo) FindDeleted(p pagination.Params) ([]models.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []models.User
	for _, u := range r.users {
		if u.DeletedAt != nil {
			all = append(all, *u)
		}
	}
	return paginate(all, p)
}

type fakeJobRepo struct {
	mu        sync.Mutex
	jobs      map[string]*models.Job
	appRepo   *fakeApplicationRepo // for cascade deletes
	searchLog []string
}

func newFakeJobRepo(appRepo *fakeApplicationRepo) *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job), appRepo: appRepo}
}

func (r *fakeJobRepo) add(j *models.Job) *models.Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	r.jobs[j.ID] = j
	return j
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.jobs[id]; ok {
		cp := *j
		return &cp, nil
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) FindOwned(id, ownerID string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.jobs[id]; ok && j.UserID == ownerID {
		cp := *j
		return &cp, nil
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) FindAll(p pagination.Params) ([]models.Job, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []models.Job
	for _, j := range r.jobs {
		all = append(all, *j)
	}
	return paginate(all, p)
}

func (r *fakeJobRepo) FindByOwner(ownerID string, p pagination.Params) ([]models.Job, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []models.Job
	for _, j := range r.jobs {
		if j.UserID == ownerID {
			all = append(all, *j)
		}
	}
	return paginate(all, p)
}

func (r *fakeJobRepo) Update(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) DeleteCascade(id string) ([]string, error) {
	r.mu.Lock()
	if _, ok := r.jobs[id]; !ok {
		r.mu.Unlock()
		return nil, repositories.ErrJobNotFound
	}
	delete(r.jobs, id)
	r.mu.Unlock()

	var paths []string
	if r.appRepo != nil {
		r.appRepo.mu.Lock()
		for appID, a := range r.appRepo.applications {
			if a.JobID == id {
				if a.ResumePath != "" {
					paths = append(paths, a.ResumePath)
				}
				delete(r.appRepo.applications, appID)
			}
		}
		r.appRepo.mu.Unlock()
	}
	return paths, nil
}

func (r *fakeJobRepo) SearchByTitle(query string) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searchLog = append(r.searchLog, query)
	if query == "" {
		return []models.Job{}, nil
	}
	var out []models.Job
	for _, j := range r.jobs {
		if containsFold(j.Title, query) {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) FindApplicants(jobID string) ([]models.Application, error) {
	r.appRepo.mu.Lock()
	defer r.appRepo.mu.Unlock()
	var out []models.Application
	for _, a := range r.appRepo.applications {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) FindApplicantScoped(ownerID, jobID, applicationID string) (*models.Application, error) {
	r.mu.Lock()
	job, ok := r.jobs[jobID]
	r.mu.Unlock()
	if !ok || job.UserID != ownerID {
		return nil, repositories.ErrApplicationNotFound
	}

	r.appRepo.mu.Lock()
	defer r.appRepo.mu.Unlock()
	if a, ok := r.appRepo.applications[applicationID]; ok && a.JobID == jobID {
		cp := *a
		return &cp, nil
	}
	return nil, repositories.ErrApplicationNotFound
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[string]*models.Application
	jobRepo      *fakeJobRepo
	userRepo     *fakeUserRepo
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[string]*models.Application)}
}

func (r *fakeApplicationRepo) add(a *models.Application) *models.Application {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	r.applications[a.ID] = a
	return a
}

// withPreloads mimics the real repository's Preload chains.
func (r *fakeApplicationRepo) withPreloads(a models.Application) *models.Application {
	if r.jobRepo != nil {
		if j, err := r.jobRepo.FindByID(a.JobID); err == nil {
			if r.userRepo != nil {
				if owner, oerr := r.userRepo.FindByID(j.UserID); oerr == nil {
					j.User = owner
				}
			}
			a.Job = j
		}
	}
	if r.userRepo != nil {
		if u, err := r.userRepo.FindByID(a.UserID); err == nil {
			a.User = u
		}
	}
	return &a
}

func (r *fakeApplicationRepo) Create(application *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.applications {
		if a.UserID == application.UserID && a.JobID == application.JobID {
			return repositories.ErrDuplicateApplication
		}
	}
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	cp := *application
	r.applications[application.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	r.mu.Lock()
	a, ok := r.applications[id]
	if !ok {
		r.mu.Unlock()
		return nil, repositories.ErrApplicationNotFound
	}
	cp := *a
	r.mu.Unlock()
	return r.withPreloads(cp), nil
}

func (r *fakeApplicationRepo) FindExisting(userID, jobID string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.applications {
		if a.UserID == userID && a.JobID == jobID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) FindScoped(id, userID string) (*models.Application, error) {
	r.mu.Lock()
	a, ok := r.applications[id]
	if !ok || a.UserID != userID {
		r.mu.Unlock()
		return nil, repositories.ErrApplicationNotFound
	}
	cp := *a
	r.mu.Unlock()
	return r.withPreloads(cp), nil
}

func (r *fakeApplicationRepo) FindByUser(userID string) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, a := range r.applications {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindCancelledByUser(userID string) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, a := range r.applications {
		if a.UserID == userID && a.Status == models.ApplicationStatusCancelled {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatusIf(id string, from, to models.ApplicationStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.applications[id]
	if !ok || a.Status != from {
		return false, nil
	}
	a.Status = to
	return true, nil
}

func (r *fakeApplicationRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.applications[id]; !ok {
		return repositories.ErrApplicationNotFound
	}
	delete(r.applications, id)
	return nil
}

func (r *fakeApplicationRepo) DeleteCancelledBefore(cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, a := range r.applications {
		if a.Status == models.ApplicationStatusCancelled && !a.UpdatedAt.After(cutoff) {
			delete(r.applications, id)
			removed++
		}
	}
	return removed, nil
}

type fakeSkillRepo struct {
	mu     sync.Mutex
	skills map[string]*models.Skill
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: make(map[string]*models.Skill)}
}

func (r *fakeSkillRepo) Create(skill *models.Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.skills {
		if s.UserID == skill.UserID && s.SkillName == skill.SkillName {
			return repositories.ErrDuplicateSkillName
		}
	}
	if skill.ID == "" {
		skill.ID = uuid.NewString()
	}
	cp := *skill
	r.skills[skill.ID] = &cp
	return nil
}

func (r *fakeSkillRepo) FindByID(id string) (*models.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.skills[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, repositories.ErrSkillNotFound
}

func (r *fakeSkillRepo) FindByUserAndName(userID, skillName string) (*models.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.skills {
		if s.UserID == userID && s.SkillName == skillName {
			cp := *s
			return &cp, nil
		}
	}
	return nil, repositories.ErrSkillNotFound
}

func (r *fakeSkillRepo) FindScoped(id, userID string) (*models.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.skills[id]; ok && s.UserID == userID {
		cp := *s
		return &cp, nil
	}
	return nil, repositories.ErrSkillNotFound
}

func (r *fakeSkillRepo) FindAll(p pagination.Params) ([]models.Skill, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []models.Skill
	for _, s := range r.skills {
		all = append(all, *s)
	}
	return paginate(all, p)
}

func (r *fakeSkillRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.skills[id]; !ok {
		return repositories.ErrSkillNotFound
	}
	delete(r.skills, id)
	return nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications map[string]*models.Notification
	createErr     error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[string]*models.Notification)}
}

func (r *fakeNotificationRepo) Create(notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	cp := *notification
	r.notifications[notification.ID] = &cp
	return nil
}

func (r *fakeNotificationRepo) FindByUser(userID string) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) FindScoped(id, userID string) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.notifications[id]; ok && n.UserID == userID {
		cp := *n
		return &cp, nil
	}
	return nil, repositories.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) MarkAsRead(id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[id]
	if !ok || n.UserID != userID {
		return repositories.ErrNotificationNotFound
	}
	now := nowFn()
	n.IsRead = true
	n.ReadAt = &now
	return nil
}

func (r *fakeNotificationRepo) DeleteScoped(id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[id]
	if !ok || n.UserID != userID {
		return repositories.ErrNotificationNotFound
	}
	delete(r.notifications, n.ID)
	return nil
}

func (r *fakeNotificationRepo) UnreadCount(userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

type fakeVerificationRepo struct {
	mu            sync.Mutex
	verifications map[string]*models.EmailVerification
	recoveries    map[string]*models.AccountRecovery
}

func newFakeVerificationRepo() *fakeVerificationRepo {
	return &fakeVerificationRepo{
		verifications: make(map[string]*models.EmailVerification),
		recoveries:    make(map[string]*models.AccountRecovery),
	}
}

func (r *fakeVerificationRepo) CreateVerification(v *models.EmailVerification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.verifications {
		if existing.Email == v.Email || existing.Username == v.Username {
			return repositories.ErrPendingExists
		}
	}
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	cp := *v
	r.verifications[v.ID] = &cp
	return nil
}

func (r *fakeVerificationRepo) FindVerificationByEmail(email string) (*models.EmailVerification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.verifications {
		if v.Email == email {
			cp := *v
			return &cp, nil
		}
	}
	return nil, repositories.ErrVerificationNotFound
}

func (r *fakeVerificationRepo) FindVerificationByUsername(username string) (*models.EmailVerification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.verifications {
		if v.Username == username {
			cp := *v
			return &cp, nil
		}
	}
	return nil, repositories.ErrVerificationNotFound
}

func (r *fakeVerificationRepo) FindVerificationByCode(code string) (*models.EmailVerification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.verifications {
		if v.Code == code && v.ExpiresAt.After(nowFn()) {
			cp := *v
			return &cp, nil
		}
	}
	return nil, repositories.ErrVerificationNotFound
}

func (r *fakeVerificationRepo) DeleteVerification(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.verifications, id)
	return nil
}

func (r *fakeVerificationRepo) CreateRecovery(rec *models.AccountRecovery) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.recoveries {
		if existing.Email == rec.Email {
			return repositories.ErrPendingExists
		}
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	cp := *rec
	r.recoveries[rec.ID] = &cp
	return nil
}

func (r *fakeVerificationRepo) FindRecoveryByCode(code string) (*models.AccountRecovery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.recoveries {
		if rec.Code == code && rec.ExpiresAt.After(nowFn()) {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, repositories.ErrRecoveryNotFound
}

func (r *fakeVerificationRepo) DeleteRecoveryByEmail(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, rec := range r.recoveries {
		if rec.Email == email {
			delete(r.recoveries, id)
		}
	}
	return nil
}

func (r *fakeVerificationRepo) DeleteExpiredVerifications(now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, v := range r.verifications {
		if v.ExpiresAt.Before(now) {
			delete(r.verifications, id)
			removed++
		}
	}
	return removed, nil
}

func (r *fakeVerificationRepo) DeleteExpiredRecoveries(now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, rec := range r.recoveries {
		if rec.ExpiresAt.Before(now) {
			delete(r.recoveries, id)
			removed++
		}
	}
	return removed, nil
}

// fakeEmailProvider records sent codes instead of dialing SMTP.
type fakeEmailProvider struct {
	mu                sync.Mutex
	verificationCodes map[string]string // email -> code
	recoveryCodes     map[string]string
	failNext          error
}

func newFakeEmailProvider() *fakeEmailProvider {
	return &fakeEmailProvider{
		verificationCodes: make(map[string]string),
		recoveryCodes:     make(map[string]string),
	}
}

func (p *fakeEmailProvider) SendVerificationCode(to, code string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failNext != nil {
		err := p.failNext
		p.failNext = nil
		return err
	}
	p.verificationCodes[to] = code
	return nil
}

func (p *fakeEmailProvider) SendRecoveryCode(to, code string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failNext != nil {
		err := p.failNext
		p.failNext = nil
		return err
	}
	p.recoveryCodes[to] = code
	return nil
}

// fakePusher records push targets.
type fakePusher struct {
	mu     sync.Mutex
	pushes []string // userIDs
}

func (p *fakePusher) NotifyUser(userID, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pushes = append(p.pushes, userID)
}

// fakeStorage records deletions.
type fakeStorage struct {
	mu      sync.Mutex
	deleted []string
}

func (s *fakeStorage) Save(ctx context.Context, path string, reader io.Reader) error { return nil }
func (s *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error)  { return nil, nil }
func (s *fakeStorage) Exists(ctx context.Context, path string) (bool, error)        { return false, nil }
func (s *fakeStorage) GetURL(ctx context.Context, path string) (string, error)      { return path, nil }

func (s *fakeStorage) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, path)
	return nil
}

// --- helpers ---

func paginate[T any](all []T, p pagination.Params) ([]T, int64, error) {
	total := int64(len(all))
	start := p.Offset()
	if start >= len(all) {
		return []T{}, total, nil
	}
	end := start + p.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func containsFold(s, substr string) bool {
	return len(substr) <= len(s) && indexFold(s, substr) >= 0
}

func indexFold(s, substr string) int {
	lower := func(b byte) byte {
		if 'A' <= b && b <= 'Z' {
			return b + 'a' - 'A'
		}
		return b
	}
	for i := 0; i+len(substr) <= len(s); i++ {
		match := true
		for j := 0; j < len(substr); j++ {
			if lower(s[i+j]) != lower(substr[j]) {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
