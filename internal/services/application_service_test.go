package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/models"
	"jobboard_backend/pkg/apperrors"
)

type lifecycleFixture struct {
	service   ApplicationService
	users     *fakeUserRepo
	jobs      *fakeJobRepo
	apps      *fakeApplicationRepo
	notifRepo *fakeNotificationRepo
	pusher    *fakePusher
	storage   *fakeStorage

	recruiter *models.User
	applicant *models.User
	job       *models.Job
}

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	t.Helper()

	users := newFakeUserRepo()
	apps := newFakeApplicationRepo()
	jobs := newFakeJobRepo(apps)
	apps.jobRepo = jobs
	apps.userRepo = users

	notifRepo := newFakeNotificationRepo()
	pusher := &fakePusher{}
	store := &fakeStorage{}

	recruiter := users.add(&models.User{
		Email: "hr@acme.test", Username: "acme_hr", Fullname: "Acme HR",
		Role: models.UserRoleRecruiter, CompanyName: "Acme",
	})
	applicant := users.add(&models.User{
		Email: "dev@mail.test", Username: "dev", Fullname: "Dana Developer",
		Role: models.UserRoleJobseeker,
	})
	job := jobs.add(&models.Job{UserID: recruiter.ID, Title: "Backend Engineer"})

	notifService := NewNotificationService(notifRepo, pusher)
	service := NewApplicationService(apps, jobs, users, notifService, store)

	return &lifecycleFixture{
		service: service, users: users, jobs: jobs, apps: apps,
		notifRepo: notifRepo, pusher: pusher, storage: store,
		recruiter: recruiter, applicant: applicant, job: job,
	}
}

func TestApply_CreatesApplicationAndNotifiesOwner(t *testing.T) {
	f := newLifecycleFixture(t)

	resp, err := f.service.Apply(f.applicant.ID, f.job.ID, "resumes/dev/cv.pdf")
	require.NoError(t, err)

	assert.Equal(t, string(models.ApplicationStatusApplied), resp.Status)
	assert.Equal(t, f.applicant.ID, resp.UserID)
	assert.Equal(t, f.job.ID, resp.JobID)
	assert.Equal(t, "resumes/dev/cv.pdf", resp.ResumePath)
	require.NotNil(t, resp.Job)
	assert.Equal(t, "Backend Engineer", resp.Job.Title)

	// The job owner got a stored notification and a live push.
	notifications, err := f.notifRepo.FindByUser(f.recruiter.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Message, "Dana Developer")
	assert.Contains(t, notifications[0].Message, "Backend Engineer")
	assert.Equal(t, []string{f.recruiter.ID}, f.pusher.pushes)

	// Nothing was cleaned up.
	assert.Empty(t, f.storage.deleted)
}

func TestApply_UnknownJobRemovesResume(t *testing.T) {
	f := newLifecycleFixture(t)

	_, err := f.service.Apply(f.applicant.ID, "missing-job", "resumes/dev/cv.pdf")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	assert.Equal(t, []string{"resumes/dev/cv.pdf"}, f.storage.deleted)
}

func TestApply_DuplicateIsRejected(t *testing.T) {
	f := newLifecycleFixture(t)

	_, err := f.service.Apply(f.applicant.ID, f.job.ID, "")
	require.NoError(t, err)

	_, err = f.service.Apply(f.applicant.ID, f.job.ID, "resumes/dev/second.pdf")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)

	// The second upload was orphaned and removed.
	assert.Equal(t, []string{"resumes/dev/second.pdf"}, f.storage.deleted)
}

func TestApply_CancelledApplicationKeepsSlot(t *testing.T) {
	f := newLifecycleFixture(t)

	resp, err := f.service.Apply(f.applicant.ID, f.job.ID, "")
	require.NoError(t, err)

	_, err = f.service.Cancel(f.applicant.ID, resp.ID)
	require.NoError(t, err)

	// Still applied as far as uniqueness is concerned.
	_, err = f.service.Apply(f.applicant.ID, f.job.ID, "")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)

	// Deleting the cancelled application frees the slot.
	require.NoError(t, f.service.DeleteMy(f.applicant.ID, resp.ID))
	_, err = f.service.Apply(f.applicant.ID, f.job.ID, "")
	assert.NoError(t, err)
}

func TestUpdateStatus_HiredStampsCompanyAndNotifies(t *testing.T) {
	f := newLifecycleFixture(t)

	resp, err := f.service.Apply(f.applicant.ID, f.job.ID, "")
	require.NoError(t, err)

	updated, err := f.service.UpdateStatus(f.recruiter.ID, resp.ID, models.ApplicationStatusHired)
	require.NoError(t, err)
	assert.Equal(t, string(models.ApplicationStatusHired), updated.Status)

	applicant, err := f.users.FindByID(f.applicant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", applicant.CompanyName)

	notifications, err := f.notifRepo.FindByUser(f.applicant.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Message, "accepted")
}

func TestUpdateStatus_StampFailureBlocksHire(t *testing.T) {
	f := newLifecycleFixture(t)

	resp, err := f.service.Apply(f.applicant.ID, f.job.ID, "")
	require.NoError(t, err)

	// A Hired row must never exist with the applicant un-stamped, so a
	// failed stamp fails the verdict and leaves the application Applied.
	f.users.updateCompanyErr = errors.New("users table unavailable")
	_, err = f.service.UpdateStatus(f.recruiter.ID, resp.ID, models.ApplicationStatusHired)
	require.Error(t, err)

	current, err := f.apps.FindByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApplied, current.Status)

	// The verdict still works once the stamp can land.
	f.users.updateCompanyErr = nil
	updated, err := f.service.UpdateStatus(f.recruiter.ID, resp.ID, models.ApplicationStatusHired)
	require.NoError(t, err)
	assert.Equal(t, string(models.ApplicationStatusHired), updated.Status)

	applicant, err := f.users.FindByID(f.applicant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", applicant.CompanyName)
}

func TestUpdateStatus_NotOwnerForbidden(t *testing.T) {
	f := newLifecycleFixture(t)

	other := f.users.add(&models.User{
		Email: "other@acme.test", Username: "other_hr",
		Role: models.UserRoleRecruiter, CompanyName: "Other Co",
	})

	resp, err := f.service.Apply(f.applicant.ID, f.job.ID, "")
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(other.ID, resp.ID, models.ApplicationStatusRejected)
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)
}

func TestUpdateStatus_HiredRequiresCompany(t *testing.T) {
	f := newLifecycleFixture(t)

	f.recruiter.CompanyName = ""
	require.NoError(t, f.users.Update(f.recruiter))

	resp, err := f.service.Apply(f.applicant.ID, f.job.ID, "")
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(f.recruiter.ID, resp.ID, models.ApplicationStatusHired)
	assert.ErrorIs(t, err, apperrors.ErrRecruiterHasNoCompany)

	// Rejection is still possible without a company.
	updated, err := f.service.UpdateStatus(f.recruiter.ID, resp.ID, models.ApplicationStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, string(models.ApplicationStatusRejected), updated.Status)
}

func TestUpdateStatus_TerminalStateRejected(t *testing.T) {
	f := newLifecycleFixture(t)

	resp, err := f.service.Apply(f.applicant.ID, f.job.ID, "")
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(f.recruiter.ID, resp.ID, models.ApplicationStatusRejected)
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(f.recruiter.ID, resp.ID, models.ApplicationStatusHired)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
	assert.Contains(t, appErr.Message, "Rejected")
}

func TestUpdateStatus_OnlyVerdictStatusesAccepted(t *testing.T) {
	f := newLifecycleFixture(t)

	resp, err := f.service.Apply(f.applicant.ID, f.job.ID, "")
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(f.recruiter.ID, resp.ID, models.ApplicationStatusCancelled)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

func TestCancel_OnlyOwnerAndOnlyFromApplied(t *testing.T) {
	f := newLifecycleFixture(t)

	resp, err := f.service.Apply(f.applicant.ID, f.job.ID, "")
	require.NoError(t, err)

	// Someone else's application looks like it does not exist.
	_, err = f.service.Cancel(f.recruiter.ID, resp.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotApplicationOwner)

	cancelled, err := f.service.Cancel(f.applicant.ID, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.ApplicationStatusCancelled), cancelled.Status)

	// Cancelling twice fails: the row is terminal now.
	_, err = f.service.Cancel(f.applicant.ID, resp.ID)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotCancellable)
}

func TestDeleteMy_HiredIsBlocked(t *testing.T) {
	f := newLifecycleFixture(t)

	resp, err := f.service.Apply(f.applicant.ID, f.job.ID, "resumes/dev/cv.pdf")
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(f.recruiter.ID, resp.ID, models.ApplicationStatusHired)
	require.NoError(t, err)

	err = f.service.DeleteMy(f.applicant.ID, resp.ID)
	assert.ErrorIs(t, err, apperrors.ErrApplicationHired)
}

func TestDeleteMy_RemovesRowAndResume(t *testing.T) {
	f := newLifecycleFixture(t)

	resp, err := f.service.Apply(f.applicant.ID, f.job.ID, "resumes/dev/cv.pdf")
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteMy(f.applicant.ID, resp.ID))
	assert.Contains(t, f.storage.deleted, "resumes/dev/cv.pdf")

	_, err = f.service.GetOneOfMy(f.applicant.ID, resp.ID)
	require.Error(t, err)
}

func TestGetOneOfMy_ScopedToOwner(t *testing.T) {
	f := newLifecycleFixture(t)

	resp, err := f.service.Apply(f.applicant.ID, f.job.ID, "")
	require.NoError(t, err)

	_, err = f.service.GetOneOfMy(f.recruiter.ID, resp.ID)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestGetMyCancelled_FiltersByStatus(t *testing.T) {
	f := newLifecycleFixture(t)

	job2 := f.jobs.add(&models.Job{UserID: f.recruiter.ID, Title: "Platform Engineer"})

	first, err := f.service.Apply(f.applicant.ID, f.job.ID, "")
	require.NoError(t, err)
	_, err = f.service.Apply(f.applicant.ID, job2.ID, "")
	require.NoError(t, err)

	_, err = f.service.Cancel(f.applicant.ID, first.ID)
	require.NoError(t, err)

	cancelled, err := f.service.GetMyCancelled(f.applicant.ID)
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, first.ID, cancelled[0].ID)

	all, err := f.service.GetAllMy(f.applicant.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
