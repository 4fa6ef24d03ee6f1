package usecase_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/mock"

	"kodeksa-backend/internal/domain"
	"kodeksa-backend/pkg/logger"
	"kodeksa-backend/pkg/notify"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func ptr[T any](v T) *T { return &v }

// Mock Repositories

type MockVacancyRepo struct {
	mock.Mock
}

func (m *MockVacancyRepo) Create(ctx context.Context, vacancy *domain.Vacancy) error {
	return m.Called(ctx, vacancy).Error(0)
}

func (m *MockVacancyRepo) GetByID(ctx context.Context, id string) (*domain.Vacancy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}

func (m *MockVacancyRepo) GetBySlug(ctx context.Context, slug string) (*domain.Vacancy, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}

func (m *MockVacancyRepo) GetApplications(ctx context.Context, vacancyID string) ([]domain.Application, error) {
	args := m.Called(ctx, vacancyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockVacancyRepo) Fetch(ctx context.Context, filter domain.VacancyFilter) ([]domain.Vacancy, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Vacancy), args.Get(1).(int64), args.Error(2)
}

func (m *MockVacancyRepo) Update(ctx context.Context, vacancy *domain.Vacancy) error {
	return m.Called(ctx, vacancy).Error(0)
}

func (m *MockVacancyRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetByVacancyAndEmail(ctx context.Context, vacancyID, email string) (*domain.Application, error) {
	args := m.Called(ctx, vacancyID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) Fetch(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Application), args.Get(1).(int64), args.Error(2)
}

func (m *MockApplicationRepo) Update(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockApplicationRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetBySlug(ctx context.Context, slug string) (*domain.User, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Fetch(ctx context.Context, filter domain.UserFilter) ([]domain.User, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockCurriculumRepo struct {
	mock.Mock
}

func (m *MockCurriculumRepo) Create(ctx context.Context, cur *domain.Curriculum) error {
	return m.Called(ctx, cur).Error(0)
}

func (m *MockCurriculumRepo) GetByID(ctx context.Context, id string) (*domain.Curriculum, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Curriculum), args.Error(1)
}

func (m *MockCurriculumRepo) GetByUserID(ctx context.Context, userID string) (*domain.Curriculum, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Curriculum), args.Error(1)
}

func (m *MockCurriculumRepo) Update(ctx context.Context, cur *domain.Curriculum) error {
	return m.Called(ctx, cur).Error(0)
}

func (m *MockCurriculumRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *MockSkillRepo) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) Fetch(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) FetchByUser(ctx context.Context, userID string) ([]domain.Skill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) Update(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *MockSkillRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockWorkExperienceRepo struct {
	mock.Mock
}

func (m *MockWorkExperienceRepo) Create(ctx context.Context, exp *domain.WorkExperience) error {
	return m.Called(ctx, exp).Error(0)
}

func (m *MockWorkExperienceRepo) GetByID(ctx context.Context, id string) (*domain.WorkExperience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkExperience), args.Error(1)
}

func (m *MockWorkExperienceRepo) Fetch(ctx context.Context) ([]domain.WorkExperience, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkExperience), args.Error(1)
}

func (m *MockWorkExperienceRepo) FetchByUser(ctx context.Context, userID string) ([]domain.WorkExperience, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkExperience), args.Error(1)
}

func (m *MockWorkExperienceRepo) Update(ctx context.Context, exp *domain.WorkExperience) error {
	return m.Called(ctx, exp).Error(0)
}

func (m *MockWorkExperienceRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockBlogRepo struct {
	mock.Mock
}

func (m *MockBlogRepo) Create(ctx context.Context, blog *domain.Blog) error {
	return m.Called(ctx, blog).Error(0)
}

func (m *MockBlogRepo) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}

func (m *MockBlogRepo) GetBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}

func (m *MockBlogRepo) Fetch(ctx context.Context, filter domain.BlogFilter) ([]domain.Blog, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Blog), args.Get(1).(int64), args.Error(2)
}

func (m *MockBlogRepo) Update(ctx context.Context, blog *domain.Blog) error {
	return m.Called(ctx, blog).Error(0)
}

func (m *MockBlogRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBlogRepo) CreateSection(ctx context.Context, section *domain.BlogSection) error {
	return m.Called(ctx, section).Error(0)
}

func (m *MockBlogRepo) GetSection(ctx context.Context, id string) (*domain.BlogSection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogSection), args.Error(1)
}

func (m *MockBlogRepo) GetSectionsByBlog(ctx context.Context, blogID string) ([]domain.BlogSection, error) {
	args := m.Called(ctx, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlogSection), args.Error(1)
}

func (m *MockBlogRepo) GetSectionsByBlogAndIDs(ctx context.Context, blogID string, ids []string) ([]domain.BlogSection, error) {
	args := m.Called(ctx, blogID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlogSection), args.Error(1)
}

func (m *MockBlogRepo) UpdateSection(ctx context.Context, section *domain.BlogSection) error {
	return m.Called(ctx, section).Error(0)
}

func (m *MockBlogRepo) UpdateSectionOrder(ctx context.Context, sectionID string, order int) error {
	return m.Called(ctx, sectionID, order).Error(0)
}

func (m *MockBlogRepo) DeleteSection(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBlogRepo) DeleteSectionsByBlog(ctx context.Context, blogID string) error {
	return m.Called(ctx, blogID).Error(0)
}

type MockSolutionRepo struct {
	mock.Mock
}

func (m *MockSolutionRepo) Create(ctx context.Context, solution *domain.Solution) error {
	return m.Called(ctx, solution).Error(0)
}

func (m *MockSolutionRepo) GetByID(ctx context.Context, id string) (*domain.Solution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Solution), args.Error(1)
}

func (m *MockSolutionRepo) Fetch(ctx context.Context, filter domain.SolutionFilter) ([]domain.Solution, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Solution), args.Get(1).(int64), args.Error(2)
}

func (m *MockSolutionRepo) Update(ctx context.Context, solution *domain.Solution) error {
	return m.Called(ctx, solution).Error(0)
}

func (m *MockSolutionRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSolutionRepo) CreateFeature(ctx context.Context, feature *domain.Feature) error {
	return m.Called(ctx, feature).Error(0)
}

func (m *MockSolutionRepo) GetFeature(ctx context.Context, id string) (*domain.Feature, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Feature), args.Error(1)
}

func (m *MockSolutionRepo) FetchFeatures(ctx context.Context, solutionID string) ([]domain.Feature, error) {
	args := m.Called(ctx, solutionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feature), args.Error(1)
}

func (m *MockSolutionRepo) UpdateFeature(ctx context.Context, feature *domain.Feature) error {
	return m.Called(ctx, feature).Error(0)
}

func (m *MockSolutionRepo) DeleteFeature(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCardConfigRepo struct {
	mock.Mock
}

func (m *MockCardConfigRepo) Create(ctx context.Context, cfg *domain.CardConfiguration) error {
	return m.Called(ctx, cfg).Error(0)
}

func (m *MockCardConfigRepo) GetByID(ctx context.Context, id string) (*domain.CardConfiguration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CardConfiguration), args.Error(1)
}

func (m *MockCardConfigRepo) GetByUserID(ctx context.Context, userID string) (*domain.CardConfiguration, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CardConfiguration), args.Error(1)
}

func (m *MockCardConfigRepo) Update(ctx context.Context, cfg *domain.CardConfiguration) error {
	return m.Called(ctx, cfg).Error(0)
}

func (m *MockCardConfigRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// Mock Collaborators

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, data []byte, filename, folder string) (string, error) {
	args := m.Called(ctx, data, filename, folder)
	return args.String(0), args.Error(1)
}

func (m *MockUploader) Delete(ctx context.Context, fileURL string) error {
	return m.Called(ctx, fileURL).Error(0)
}

type MockCardConfigUsecase struct {
	mock.Mock
}

func (m *MockCardConfigUsecase) GetByID(ctx context.Context, id string) (*domain.CardConfiguration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CardConfiguration), args.Error(1)
}

func (m *MockCardConfigUsecase) GetByUserID(ctx context.Context, userID string, checkUserExists bool) (*domain.CardConfiguration, error) {
	args := m.Called(ctx, userID, checkUserExists)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CardConfiguration), args.Error(1)
}

func (m *MockCardConfigUsecase) Create(ctx context.Context, userID string, input domain.UpdateCardConfigurationInput, skipUserCheck bool) (*domain.CardConfiguration, error) {
	args := m.Called(ctx, userID, input, skipUserCheck)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CardConfiguration), args.Error(1)
}

func (m *MockCardConfigUsecase) CreateDefault(ctx context.Context, userID string, skipUserCheck bool) (*domain.CardConfiguration, error) {
	args := m.Called(ctx, userID, skipUserCheck)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CardConfiguration), args.Error(1)
}

func (m *MockCardConfigUsecase) Update(ctx context.Context, id string, input domain.UpdateCardConfigurationInput) (*domain.CardConfiguration, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CardConfiguration), args.Error(1)
}

func (m *MockCardConfigUsecase) Reset(ctx context.Context, id string) (*domain.CardConfiguration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CardConfiguration), args.Error(1)
}

func (m *MockCardConfigUsecase) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCurriculumUsecase struct {
	mock.Mock
}

func (m *MockCurriculumUsecase) GetByID(ctx context.Context, id string) (*domain.Curriculum, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Curriculum), args.Error(1)
}

func (m *MockCurriculumUsecase) GetByUserID(ctx context.Context, userID string, checkUserExists bool) (*domain.Curriculum, error) {
	args := m.Called(ctx, userID, checkUserExists)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Curriculum), args.Error(1)
}

func (m *MockCurriculumUsecase) Create(ctx context.Context, userID string, input domain.UpsertCurriculumInput, skipUserCheck bool) (*domain.Curriculum, error) {
	args := m.Called(ctx, userID, input, skipUserCheck)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Curriculum), args.Error(1)
}

func (m *MockCurriculumUsecase) Update(ctx context.Context, id string, input domain.UpsertCurriculumInput) (*domain.Curriculum, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Curriculum), args.Error(1)
}

func (m *MockCurriculumUsecase) CreateOrUpdate(ctx context.Context, userID string, input domain.UpsertCurriculumInput) (*domain.Curriculum, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Curriculum), args.Error(1)
}

func (m *MockCurriculumUsecase) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockNotifier struct {
	mock.Mock
	configured bool
	notified   chan string
	verified   chan string
}

func NewMockNotifier(configured bool) *MockNotifier {
	return &MockNotifier{
		configured: configured,
		notified:   make(chan string, 1),
		verified:   make(chan string, 1),
	}
}

func (m *MockNotifier) IsConfigured() bool {
	return m.configured
}

func (m *MockNotifier) NotifyUserCreation(ctx context.Context, userID string) error {
	m.notified <- userID
	return nil
}

func (m *MockNotifier) VerifyUserInfo(ctx context.Context, email string) notify.VerificationResult {
	m.verified <- email
	return notify.VerificationResult{IsValid: true, Score: 50}
}
