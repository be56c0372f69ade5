package customization_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/podstudio/internal/catalog"
	"github.com/nikolayk812/podstudio/internal/customization"
	"github.com/nikolayk812/podstudio/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type serviceSuite struct {
	suite.Suite

	catalog *catalog.Memory
	store   *fakeCartStore
	sink    *recordingSink
	logs    *test.Hook
	svc     *customization.Service

	product domain.Product
	design  domain.Design
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(serviceSuite))
}

func (suite *serviceSuite) SetupTest() {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	suite.catalog = catalog.NewMemory()
	suite.store = &fakeCartStore{}
	suite.sink = &recordingSink{}
	suite.logs = hook
	suite.svc = customization.NewService(suite.catalog, suite.store, suite.sink, mustCalculator(), logger)

	suite.product = randomProduct("t-shirt", "19.99")
	suite.design = randomDesign("5.99")
	suite.catalog.AddProduct(suite.product)
	suite.catalog.AddDesign(suite.design)
}

func (suite *serviceSuite) completeWizard(s *customization.Session) {
	t := suite.T()

	w, err := s.Wizard()
	require.NoError(t, err)
	require.NoError(t, w.ToggleArea("front-center"))
	require.NoError(t, s.Next())
	require.NoError(t, w.SetSize(domain.SizeMedium))
	for !w.IsComplete() {
		require.NoError(t, s.Next())
	}
	require.Equal(t, domain.StepSummary, s.Step())
}

func (suite *serviceSuite) TestStartWithProduct() {
	t := suite.T()
	ctx := t.Context()

	s, err := suite.svc.StartWithProduct(ctx, "owner-1", suite.product.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepDesignSelection, s.Step())

	require.NoError(t, suite.svc.SelectDesign(ctx, s, suite.design.ID))
	assert.Equal(t, domain.StepDesignSuit, s.Step())
}

func (suite *serviceSuite) TestStartWithDesign() {
	t := suite.T()
	ctx := t.Context()

	s, err := suite.svc.StartWithDesign(ctx, "owner-1", suite.design.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepProductSelection, s.Step())

	require.NoError(t, suite.svc.SelectProduct(ctx, s, suite.product.ID))
	assert.Equal(t, domain.StepDesignSuit, s.Step())
}

func (suite *serviceSuite) TestStartWithUnknownProduct() {
	t := suite.T()

	s, err := suite.svc.StartWithProduct(t.Context(), "owner-1", uuid.New())

	var lookupErr *domain.CatalogLookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "product", lookupErr.Kind)
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	require.NotNil(t, s)
	assert.Equal(t, domain.StepHome, s.Step())
	assert.Nil(t, s.SelectedProduct())

	n, ok := suite.sink.last()
	require.True(t, ok)
	assert.Equal(t, domain.NotifyInfo, n.Kind)
	assert.Equal(t, logrus.WarnLevel, suite.logs.LastEntry().Level)
}

func (suite *serviceSuite) TestNotCustomizableProductRejected() {
	fixed := randomProduct("poster", "12")
	fixed.IsCustomizable = false
	suite.catalog.AddProduct(fixed)

	tests := []struct {
		name string
		pick func(ctx context.Context) (*customization.Session, error)
	}{
		{
			name: "select product",
			pick: func(ctx context.Context) (*customization.Session, error) {
				return suite.svc.StartWithProduct(ctx, "owner-1", fixed.ID)
			},
		},
		{
			name: "link with product and design",
			pick: func(ctx context.Context) (*customization.Session, error) {
				return suite.svc.StartFromLink(ctx, "owner-1", fixed.ID.String(), suite.design.ID.String())
			},
		},
		{
			name: "quick pick",
			pick: func(ctx context.Context) (*customization.Session, error) {
				s := suite.svc.NewSession("owner-1")
				return s, suite.svc.ContinueWithSelected(ctx, s, []uuid.UUID{fixed.ID}, []uuid.UUID{suite.design.ID})
			},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			s, err := tt.pick(t.Context())

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, []string{"product"}, validationErr.Fields)

			require.NotNil(t, s)
			assert.Equal(t, domain.StepHome, s.Step())
			assert.Nil(t, s.SelectedProduct())
			assert.Nil(t, s.SelectedDesign())
			assert.Empty(t, suite.store.requests)
		})
	}
}

func (suite *serviceSuite) TestSelectNotCustomizableKeepsSelection() {
	t := suite.T()
	ctx := t.Context()

	fixed := randomProduct("poster", "12")
	fixed.IsCustomizable = false
	suite.catalog.AddProduct(fixed)

	s, err := suite.svc.StartWithProduct(ctx, "owner-1", suite.product.ID)
	require.NoError(t, err)

	err = suite.svc.SelectProduct(ctx, s, fixed.ID)
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)

	assert.Equal(t, domain.StepDesignSelection, s.Step())
	assert.Equal(t, suite.product.ID, s.SelectedProduct().ID)
}

func (suite *serviceSuite) TestStartFromLink() {
	tests := []struct {
		name       string
		productRef string
		designRef  string
		wantStep   domain.Step
		wantErr    bool
	}{
		{name: "both refs", productRef: suite.product.ID.String(), designRef: suite.design.ID.String(), wantStep: domain.StepDesignSuit},
		{name: "product only", productRef: suite.product.ID.String(), wantStep: domain.StepDesignSelection},
		{name: "design only", designRef: suite.design.ID.String(), wantStep: domain.StepProductSelection},
		{name: "no refs", wantStep: domain.StepHome},
		{name: "malformed product ref", productRef: "not-a-uuid", designRef: suite.design.ID.String(), wantStep: domain.StepHome, wantErr: true},
		{name: "unknown design", productRef: suite.product.ID.String(), designRef: uuid.NewString(), wantStep: domain.StepHome, wantErr: true},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			s, err := suite.svc.StartFromLink(t.Context(), "owner-1", tt.productRef, tt.designRef)
			require.NotNil(t, s)
			if tt.wantErr {
				var lookupErr *domain.CatalogLookupError
				require.ErrorAs(t, err, &lookupErr)
				assert.Nil(t, s.SelectedProduct())
				assert.Nil(t, s.SelectedDesign())
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStep, s.Step())
		})
	}
}

func (suite *serviceSuite) TestContinueWithSelectedKeepsFirst() {
	t := suite.T()
	ctx := t.Context()

	other := randomProduct("mug", "9")
	suite.catalog.AddProduct(other)

	s := suite.svc.NewSession("owner-1")
	err := suite.svc.ContinueWithSelected(ctx, s,
		[]uuid.UUID{suite.product.ID, other.ID},
		[]uuid.UUID{suite.design.ID, uuid.New()},
	)
	require.NoError(t, err)

	assert.Equal(t, domain.StepDesignSuit, s.Step())
	assert.Equal(t, suite.product.ID, s.SelectedProduct().ID)
	assert.Equal(t, suite.design.ID, s.SelectedDesign().ID)
}

func (suite *serviceSuite) TestSubmit() {
	t := suite.T()
	ctx := t.Context()

	s, err := suite.svc.StartFromLink(ctx, "owner-1", suite.product.ID.String(), suite.design.ID.String())
	require.NoError(t, err)
	suite.completeWizard(s)

	req, err := suite.svc.Submit(ctx, s)
	require.NoError(t, err)

	assert.Equal(t, "25.98", req.TotalPrice.Amount.StringFixed(2))
	require.Equal(t, 1, suite.store.count())
	assert.Equal(t, "owner-1", suite.store.owners[0])
	assert.Equal(t, req.ID, suite.store.requests[0].ID)

	n, ok := suite.sink.last()
	require.True(t, ok)
	assert.Equal(t, domain.NotifySuccess, n.Kind)
	assert.Equal(t, "Sent to Designer", n.Title)

	assert.Nil(t, s.SelectedProduct())
	assert.Nil(t, s.SelectedDesign())
	assert.Equal(t, domain.DesignInstructions{}, s.Instructions())
	assert.Equal(t, domain.StepHome, s.Step())
}

func (suite *serviceSuite) TestSubmitIncompleteNeverReachesStore() {
	t := suite.T()
	ctx := t.Context()

	s, err := suite.svc.StartFromLink(ctx, "owner-1", suite.product.ID.String(), suite.design.ID.String())
	require.NoError(t, err)

	w, err := s.Wizard()
	require.NoError(t, err)
	require.NoError(t, w.ToggleArea("back"))

	_, err = suite.svc.Submit(ctx, s)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"size"}, verr.Fields)
	assert.Equal(t, 0, suite.store.count())
	assert.Equal(t, domain.StepDesignSuit, s.Step())
	assert.Equal(t, "back", s.Instructions().Placement)
}

func (suite *serviceSuite) TestSubmitFailureKeepsSession() {
	t := suite.T()
	ctx := t.Context()

	s, err := suite.svc.StartFromLink(ctx, "owner-1", suite.product.ID.String(), suite.design.ID.String())
	require.NoError(t, err)
	suite.completeWizard(s)

	suite.store.fail = errStoreFull
	_, err = suite.svc.Submit(ctx, s)

	var subErr *domain.SubmissionError
	require.ErrorAs(t, err, &subErr)
	require.ErrorIs(t, err, errStoreFull)
	assert.True(t, subErr.Retryable())

	assert.Equal(t, domain.StepSummary, s.Step())
	assert.Equal(t, suite.product.ID, s.SelectedProduct().ID)
	assert.Equal(t, "front-center", s.Instructions().Placement)

	n, ok := suite.sink.last()
	require.True(t, ok)
	assert.Equal(t, domain.NotifyError, n.Kind)

	suite.store.fail = nil
	_, err = suite.svc.Submit(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, 1, suite.store.count())
}

func (suite *serviceSuite) TestCancel() {
	t := suite.T()
	ctx := t.Context()

	s, err := suite.svc.StartFromLink(ctx, "owner-1", suite.product.ID.String(), suite.design.ID.String())
	require.NoError(t, err)
	suite.completeWizard(s)

	suite.svc.Cancel(s)

	assert.Equal(t, domain.StepHome, s.Step())
	assert.Nil(t, s.SelectedProduct())
	assert.Equal(t, 0, suite.store.count())

	_, err = suite.svc.Submit(ctx, s)
	require.Error(t, err)
	assert.Equal(t, 0, suite.store.count())
}

func (suite *serviceSuite) TestQuote() {
	t := suite.T()

	s, err := suite.svc.StartFromLink(t.Context(), "owner-1", suite.product.ID.String(), suite.design.ID.String())
	require.NoError(t, err)
	s.SetUploadedImage("uploads/me.jpg")

	assert.Equal(t, "35.98", suite.svc.Quote(s).Total.Amount.StringFixed(2))
}
