package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/cashbook_app/internal/apperrors"
	"github.com/SscSPs/cashbook_app/internal/cache"
	"github.com/SscSPs/cashbook_app/internal/core/domain"
	portssvc "github.com/SscSPs/cashbook_app/internal/core/ports/services"
	"github.com/SscSPs/cashbook_app/internal/core/services"
	"github.com/SscSPs/cashbook_app/internal/dto"
	"github.com/SscSPs/cashbook_app/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

type TenantServiceTestSuite struct {
	suite.Suite
	ctx           context.Context
	mockRepo      *MockTenantRepository
	mockPublisher *MockPublisher
	service       portssvc.TenantSvcFacade
}

func (suite *TenantServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockTenantRepository)
	suite.mockPublisher = new(MockPublisher)
	suite.service = services.NewTenantService(
		suite.mockRepo,
		cache.NewTenantCache(16, time.Minute),
		services.WithEventPublisher(suite.mockPublisher),
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithIDGenerator(func() string { return "tenant-1" }),
	)
}

func (suite *TenantServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestCreateTenant_Success() {
	suite.mockRepo.On("SaveTenant", suite.ctx, domain.Tenant{
		TenantID:  "tenant-1",
		Code:      "acme",
		Name:      "ACME d.o.o.",
		CreatedAt: fixedNow,
	}).Return(nil).Once()
	suite.mockPublisher.On("Publish", suite.ctx, eventOfType(events.TenantCreated)).Return(nil).Once()

	tenant, err := suite.service.CreateTenant(suite.ctx, dto.CreateTenantRequest{Code: "  acme ", Name: " ACME d.o.o. "})

	suite.Require().NoError(err)
	suite.Equal("acme", tenant.Code)
	suite.Equal("ACME d.o.o.", tenant.Name)

	// resolved from cache, FindTenantByCode is never called
	resolved, err := suite.service.ResolveTenant(suite.ctx, "acme")
	suite.Require().NoError(err)
	suite.Equal("tenant-1", resolved.TenantID)
}

func (suite *TenantServiceTestSuite) TestCreateTenant_Validation() {
	cases := []dto.CreateTenantRequest{
		{Code: "   ", Name: "Name"},
		{Code: strings.Repeat("x", domain.MaxTenantCodeLength+1), Name: "Name"},
		{Code: "acme", Name: "  "},
	}
	for _, req := range cases {
		tenant, err := suite.service.CreateTenant(suite.ctx, req)
		suite.Nil(tenant)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTenant", mock.Anything, mock.Anything)
}

func (suite *TenantServiceTestSuite) TestCreateTenant_MaxLengthCodeAccepted() {
	code := strings.Repeat("x", domain.MaxTenantCodeLength)
	suite.mockRepo.On("SaveTenant", suite.ctx, mock.AnythingOfType("domain.Tenant")).Return(nil).Once()
	suite.mockPublisher.On("Publish", suite.ctx, mock.Anything).Return(nil).Once()

	tenant, err := suite.service.CreateTenant(suite.ctx, dto.CreateTenantRequest{Code: code, Name: "Long"})
	suite.Require().NoError(err)
	suite.Equal(code, tenant.Code)
}

func (suite *TenantServiceTestSuite) TestCreateTenant_Conflict() {
	suite.mockRepo.On("SaveTenant", suite.ctx, mock.AnythingOfType("domain.Tenant")).
		Return(apperrors.NewConflictError("tenant code 'acme' already exists")).Once()

	tenant, err := suite.service.CreateTenant(suite.ctx, dto.CreateTenantRequest{Code: "acme", Name: "ACME"})

	suite.Nil(tenant)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockPublisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *TenantServiceTestSuite) TestCreateTenant_PublishFailureIsIgnored() {
	suite.mockRepo.On("SaveTenant", suite.ctx, mock.AnythingOfType("domain.Tenant")).Return(nil).Once()
	suite.mockPublisher.On("Publish", suite.ctx, mock.Anything).Return(assert.AnError).Once()

	tenant, err := suite.service.CreateTenant(suite.ctx, dto.CreateTenantRequest{Code: "acme", Name: "ACME"})
	suite.Require().NoError(err)
	suite.NotNil(tenant)
}

func (suite *TenantServiceTestSuite) TestResolveTenant_CachesRepositoryHit() {
	acme := &domain.Tenant{TenantID: "t1", Code: "acme", Name: "ACME"}
	suite.mockRepo.On("FindTenantByCode", suite.ctx, "acme").Return(acme, nil).Once()

	for i := 0; i < 3; i++ {
		tenant, err := suite.service.ResolveTenant(suite.ctx, "acme")
		suite.Require().NoError(err)
		suite.Equal("t1", tenant.TenantID)
	}
}

func (suite *TenantServiceTestSuite) TestResolveTenant_NotFound() {
	suite.mockRepo.On("FindTenantByCode", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	tenant, err := suite.service.ResolveTenant(suite.ctx, "ghost")
	suite.Nil(tenant)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("tenant 'ghost' not found", apperrors.Message(err, ""))
}

func (suite *TenantServiceTestSuite) TestResolveTenant_EmptyCode() {
	_, err := suite.service.ResolveTenant(suite.ctx, "  ")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TenantServiceTestSuite) TestResolveTenant_RepoError() {
	suite.mockRepo.On("FindTenantByCode", suite.ctx, "acme").Return(nil, assert.AnError).Once()

	_, err := suite.service.ResolveTenant(suite.ctx, "acme")
	suite.ErrorIs(err, assert.AnError)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TenantServiceTestSuite) TestListTenants_EmptyNotNil() {
	suite.mockRepo.On("ListTenants", suite.ctx).Return(nil, nil).Once()

	tenants, err := suite.service.ListTenants(suite.ctx)
	suite.Require().NoError(err)
	suite.NotNil(tenants)
	suite.Empty(tenants)
}

func (suite *TenantServiceTestSuite) TestRenameTenant() {
	renamed := &domain.Tenant{TenantID: "t1", Code: "acme", Name: "ACME Group"}
	suite.mockRepo.On("UpdateTenantName", suite.ctx, "t1", "ACME Group").Return(renamed, nil).Once()

	tenant, err := suite.service.RenameTenant(suite.ctx, "t1", dto.UpdateTenantRequest{Name: " ACME Group "})
	suite.Require().NoError(err)
	suite.Equal("acme", tenant.Code)
	suite.Equal("ACME Group", tenant.Name)
}

func (suite *TenantServiceTestSuite) TestRenameTenant_Errors() {
	_, err := suite.service.RenameTenant(suite.ctx, "t1", dto.UpdateTenantRequest{Name: ""})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.On("UpdateTenantName", suite.ctx, "missing", "Name").Return(nil, apperrors.ErrNotFound).Once()
	_, err = suite.service.RenameTenant(suite.ctx, "missing", dto.UpdateTenantRequest{Name: "Name"})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TenantServiceTestSuite) TestDeleteTenant_Absent() {
	suite.mockRepo.On("FindTenantByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	deleted, err := suite.service.DeleteTenant(suite.ctx, "missing")
	suite.NoError(err)
	suite.False(deleted)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteTenant", mock.Anything, mock.Anything)
}

func (suite *TenantServiceTestSuite) TestDeleteTenant_OwnsEntries() {
	acme := &domain.Tenant{TenantID: "t1", Code: "acme"}
	suite.mockRepo.On("FindTenantByID", suite.ctx, "t1").Return(acme, nil).Once()
	suite.mockRepo.On("DeleteTenant", suite.ctx, "t1").Return(false, apperrors.NewConflictError("tenant 'acme' still owns cash entries")).Once()

	deleted, err := suite.service.DeleteTenant(suite.ctx, "t1")
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.False(deleted)
}

func (suite *TenantServiceTestSuite) TestDeleteTenant_InvalidatesCache() {
	acme := &domain.Tenant{TenantID: "t1", Code: "acme"}
	suite.mockRepo.On("FindTenantByCode", suite.ctx, "acme").Return(acme, nil).Once()
	_, err := suite.service.ResolveTenant(suite.ctx, "acme")
	suite.Require().NoError(err)

	suite.mockRepo.On("FindTenantByID", suite.ctx, "t1").Return(acme, nil).Once()
	suite.mockRepo.On("DeleteTenant", suite.ctx, "t1").Return(true, nil).Once()
	suite.mockPublisher.On("Publish", suite.ctx, eventOfType(events.TenantDeleted)).Return(nil).Once()

	deleted, err := suite.service.DeleteTenant(suite.ctx, "t1")
	suite.Require().NoError(err)
	suite.True(deleted)

	suite.mockRepo.On("FindTenantByCode", suite.ctx, "acme").Return(nil, apperrors.ErrNotFound).Once()
	_, err = suite.service.ResolveTenant(suite.ctx, "acme")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TenantServiceTestSuite) TestSeedTenants_SkipsExistingAndRetired() {
	existing := &domain.Tenant{TenantID: "t1", Code: "acme"}
	suite.mockRepo.On("FindTenantByCode", suite.ctx, "acme").Return(existing, nil).Once()
	suite.mockRepo.On("FindTenantByCode", suite.ctx, "beta").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindTenantByCode", suite.ctx, "gamma").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveTenant", suite.ctx, mock.MatchedBy(func(t domain.Tenant) bool { return t.Code == "beta" })).Return(nil).Once()
	suite.mockRepo.On("SaveTenant", suite.ctx, mock.MatchedBy(func(t domain.Tenant) bool { return t.Code == "gamma" })).
		Return(apperrors.NewConflictError("retired")).Once()
	suite.mockPublisher.On("Publish", suite.ctx, eventOfType(events.TenantCreated)).Return(nil).Once()

	err := suite.service.SeedTenants(suite.ctx, dto.DemoTenants())
	suite.NoError(err)
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}
