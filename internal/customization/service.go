// Package customization holds the product/design customization flow: selecting a product and
// a design, collecting design instructions, pricing, and submitting the design request.
package customization

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/podstudio/internal/domain"
	"github.com/nikolayk812/podstudio/internal/port"
	"github.com/nikolayk812/podstudio/internal/pricing"
	"github.com/sirupsen/logrus"
)

type Service struct {
	catalog     port.CatalogProvider
	store       port.CartStore
	sink        port.NotificationSink
	calc        pricing.Calculator
	assembler   Assembler
	sessionOpts []SessionOption
	logger      logrus.FieldLogger
}

func NewService(
	catalog port.CatalogProvider,
	store port.CartStore,
	sink port.NotificationSink,
	calc pricing.Calculator,
	logger logrus.FieldLogger,
	opts ...SessionOption,
) *Service {
	return &Service{
		catalog:     catalog,
		store:       store,
		sink:        sink,
		calc:        calc,
		assembler:   NewAssembler(calc),
		sessionOpts: opts,
		logger:      logger,
	}
}

func (s *Service) NewSession(ownerID string) *Session {
	return NewSession(ownerID, s.catalog, s.sessionOpts...)
}

// StartWithProduct opens a session with the product already chosen. The returned session is
// never nil: on a lookup failure it is empty and the error is a *domain.CatalogLookupError.
func (s *Service) StartWithProduct(ctx context.Context, ownerID string, productID uuid.UUID) (*Session, error) {
	session := s.NewSession(ownerID)
	if err := s.SelectProduct(ctx, session, productID); err != nil {
		return session, err
	}
	return session, nil
}

func (s *Service) StartWithDesign(ctx context.Context, ownerID string, designID uuid.UUID) (*Session, error) {
	session := s.NewSession(ownerID)
	if err := s.SelectDesign(ctx, session, designID); err != nil {
		return session, err
	}
	return session, nil
}

// StartFromLink opens a session from deep-link references; either may be empty. If any
// reference cannot be resolved the session falls back to the empty selection.
func (s *Service) StartFromLink(ctx context.Context, ownerID, productRef, designRef string) (*Session, error) {
	session := s.NewSession(ownerID)

	var (
		product *domain.Product
		design  *domain.Design
		errs    []error
	)

	if productRef != "" {
		p, err := s.lookupProduct(ctx, productRef)
		if err != nil {
			errs = append(errs, err)
		} else {
			product = &p
		}
	}
	if designRef != "" {
		d, err := s.lookupDesign(ctx, designRef)
		if err != nil {
			errs = append(errs, err)
		} else {
			design = &d
		}
	}

	if len(errs) > 0 {
		err := errors.Join(errs...)
		s.warnLookup(ctx, ownerID, err)
		return session, err
	}

	switch {
	case product != nil && design != nil:
		session.SelectBoth(*product, *design)
	case product != nil:
		session.SelectProduct(*product)
	case design != nil:
		session.SelectDesign(*design)
	}
	s.logStep(session, "started from link")

	return session, nil
}

// SelectProduct rejects products that are not customizable and leaves the selection as is.
func (s *Service) SelectProduct(ctx context.Context, session *Session, productID uuid.UUID) error {
	p, err := s.lookupProduct(ctx, productID.String())
	if err != nil {
		s.warnLookup(ctx, session.OwnerID(), err)
		return err
	}

	session.SelectProduct(p)
	s.logStep(session, "product selected")

	return nil
}

func (s *Service) SelectDesign(ctx context.Context, session *Session, designID uuid.UUID) error {
	d, err := s.lookupDesign(ctx, designID.String())
	if err != nil {
		s.warnLookup(ctx, session.OwnerID(), err)
		return err
	}

	session.SelectDesign(d)
	s.logStep(session, "design selected")

	return nil
}

// ContinueWithSelected applies a multi-select quick pick. Only the first product and the
// first design are used; the rest are dropped.
func (s *Service) ContinueWithSelected(ctx context.Context, session *Session, productIDs, designIDs []uuid.UUID) error {
	if len(productIDs) > 1 || len(designIDs) > 1 {
		s.logger.WithFields(logrus.Fields{
			"session_id":      session.ID(),
			"products_picked": len(productIDs),
			"designs_picked":  len(designIDs),
		}).Debug("quick pick keeps only the first product and design")
	}

	var (
		product *domain.Product
		design  *domain.Design
	)
	if len(productIDs) > 0 {
		p, err := s.lookupProduct(ctx, productIDs[0].String())
		if err != nil {
			s.warnLookup(ctx, session.OwnerID(), err)
			return err
		}
		product = &p
	}
	if len(designIDs) > 0 {
		d, err := s.lookupDesign(ctx, designIDs[0].String())
		if err != nil {
			s.warnLookup(ctx, session.OwnerID(), err)
			return err
		}
		design = &d
	}

	switch {
	case product != nil && design != nil:
		session.SelectBoth(*product, *design)
	case product != nil:
		session.SelectProduct(*product)
	case design != nil:
		session.SelectDesign(*design)
	}
	s.logStep(session, "quick pick applied")

	return nil
}

func (s *Service) Quote(session *Session) pricing.Breakdown {
	return session.Quote(s.calc)
}

// Submit assembles the request and hands it to the cart store. Validation happens before
// the store is called. On a store failure the session keeps all answers and the error is a
// *domain.SubmissionError; on success the session is reset.
func (s *Service) Submit(ctx context.Context, session *Session) (domain.OrderRequest, error) {
	logger := s.logger.WithFields(logrus.Fields{
		"session_id": session.ID(),
		"owner_id":   session.OwnerID(),
	})

	req, err := s.assembler.Assemble(session)
	if err != nil {
		logger.WithError(err).Info("design request is incomplete")
		return domain.OrderRequest{}, err
	}

	logger = logger.WithFields(logrus.Fields{
		"request_id": req.ID,
		"product_id": req.ProductID,
		"total":      req.TotalPrice.String(),
	})

	previous := session.Step()
	session.setStep(domain.StepCheckout)

	if err := s.store.SubmitCartItem(ctx, session.OwnerID(), req); err != nil {
		session.setStep(previous)
		logger.WithError(err).Error("cart store rejected design request")
		s.notify(ctx, session.OwnerID(), domain.NotifyError, "Submission failed", "Your design request could not be sent. Please try again.")
		return domain.OrderRequest{}, &domain.SubmissionError{Err: err}
	}

	logger.Info("design request submitted")
	s.notify(ctx, session.OwnerID(), domain.NotifySuccess, "Sent to Designer",
		fmt.Sprintf("Your design request for %s was sent to the designer.", session.product.Name))

	session.Reset()

	return req, nil
}

// Cancel abandons the wizard. Nothing reaches the cart store.
func (s *Service) Cancel(session *Session) {
	s.logStep(session, "cancelled")
	session.Reset()
}

func (s *Service) lookupProduct(ctx context.Context, ref string) (domain.Product, error) {
	id, err := uuid.Parse(ref)
	if err != nil {
		return domain.Product{}, &domain.CatalogLookupError{Kind: "product", ID: ref, Err: err}
	}

	p, err := s.catalog.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, &domain.CatalogLookupError{Kind: "product", ID: ref, Err: err}
	}
	if !p.IsCustomizable {
		return domain.Product{}, &domain.ValidationError{
			Fields:  []string{"product"},
			Message: fmt.Sprintf("product %s is not customizable", p.ID),
		}
	}
	return p, nil
}

func (s *Service) lookupDesign(ctx context.Context, ref string) (domain.Design, error) {
	id, err := uuid.Parse(ref)
	if err != nil {
		return domain.Design{}, &domain.CatalogLookupError{Kind: "design", ID: ref, Err: err}
	}

	d, err := s.catalog.GetDesign(ctx, id)
	if err != nil {
		return domain.Design{}, &domain.CatalogLookupError{Kind: "design", ID: ref, Err: err}
	}
	return d, nil
}

func (s *Service) warnLookup(ctx context.Context, ownerID string, err error) {
	s.logger.WithError(err).WithField("owner_id", ownerID).Warn("catalog lookup failed")
	s.notify(ctx, ownerID, domain.NotifyInfo, "Item unavailable", "Some of the selected items are no longer available.")
}

func (s *Service) notify(ctx context.Context, ownerID string, kind domain.NotificationKind, title, message string) {
	s.sink.Notify(ctx, domain.Notification{
		OwnerID:   ownerID,
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *Service) logStep(session *Session, msg string) {
	s.logger.WithFields(logrus.Fields{
		"session_id": session.ID(),
		"owner_id":   session.OwnerID(),
		"step":       session.Step().String(),
	}).Debug(msg)
}
