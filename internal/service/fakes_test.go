package service

import (
	"context"
	"errors"
	"procurement-portal/internal/entity"
	"procurement-portal/internal/repo/repo_errors"
)

// sentMail is one delivery recorded by the fake mailer.
type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent     []sentMail
	failFor  map[string]error
	sentWith []*entity.EmailConfig
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{failFor: map[string]error{}}
}

func (m *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	if err, ok := m.failFor[to]; ok {
		return err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})

	return nil
}

func (m *fakeMailer) SendWith(_ context.Context, config *entity.EmailConfig, to, subject, body string) error {
	if err, ok := m.failFor[to]; ok {
		return err
	}
	m.sentWith = append(m.sentWith, config)
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})

	return nil
}

type fakeSupplierRepo struct {
	byId    map[int64]*entity.Supplier
	byEmail map[string]*entity.Supplier
	nextId  int64
	deleted []int64
	err     error
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{
		byId:    map[int64]*entity.Supplier{},
		byEmail: map[string]*entity.Supplier{},
		nextId:  1,
	}
}

func (r *fakeSupplierRepo) add(s *entity.Supplier) *entity.Supplier {
	if s.Id == 0 {
		s.Id = r.nextId
		r.nextId++
	}
	r.byId[s.Id] = s
	r.byEmail[s.Email] = s

	return s
}

func (r *fakeSupplierRepo) CreateSupplier(_ context.Context, input *entity.RegisterSupplierInput, passwordHash string) (*entity.Supplier, error) {
	if r.err != nil {
		return nil, r.err
	}
	if _, ok := r.byEmail[input.Email]; ok {
		return nil, repo_errors.ErrConflict
	}

	return r.add(&entity.Supplier{
		Name:         input.Name,
		Contact:      input.Contact,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: passwordHash,
		Documents:    input.Documents,
		CreatedAt:    "2026-01-15T10:00:00Z",
	}), nil
}

func (r *fakeSupplierRepo) GetSupplierById(_ context.Context, id int64) (*entity.Supplier, error) {
	if r.err != nil {
		return nil, r.err
	}
	s, ok := r.byId[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return s, nil
}

func (r *fakeSupplierRepo) GetSupplierByEmail(_ context.Context, email string) (*entity.Supplier, error) {
	if r.err != nil {
		return nil, r.err
	}
	s, ok := r.byEmail[email]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return s, nil
}

func (r *fakeSupplierRepo) SetSupplierActive(_ context.Context, id int64, active bool) (*entity.Supplier, error) {
	s, ok := r.byId[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	s.Active = active

	return s, nil
}

func (r *fakeSupplierRepo) SetSupplierCompliance(_ context.Context, id int64, reviewed, approved, audited bool) (*entity.Supplier, error) {
	s, ok := r.byId[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	s.IsReviewed = reviewed
	s.IsApproved = approved
	s.IsAudited = audited

	return s, nil
}

func (r *fakeSupplierRepo) UpdateSupplierDocuments(_ context.Context, id int64, documents string) error {
	s, ok := r.byId[id]
	if !ok {
		return repo_errors.ErrNotFound
	}
	s.Documents = documents

	return nil
}

func (r *fakeSupplierRepo) DeleteSupplier(_ context.Context, id int64) error {
	s, ok := r.byId[id]
	if !ok {
		return repo_errors.ErrNotFound
	}
	delete(r.byId, id)
	delete(r.byEmail, s.Email)
	r.deleted = append(r.deleted, id)

	return nil
}

func (r *fakeSupplierRepo) GetSuppliersByActiveState(_ context.Context, active bool) ([]entity.Supplier, error) {
	var out []entity.Supplier
	for _, s := range r.byId {
		if s.Active == active {
			out = append(out, *s)
		}
	}

	return out, nil
}

type fakeRequestRepo struct {
	created   []*entity.CreateRequestInput
	known     map[string]bool
	open      []entity.Request
	nextId    int64
	failOn    map[string]error
	createErr error
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{known: map[string]bool{}, failOn: map[string]error{}, nextId: 1}
}

func (r *fakeRequestRepo) CreateRequest(_ context.Context, input *entity.CreateRequestInput) (*entity.Request, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.created = append(r.created, input)
	request := &entity.Request{
		Id:          r.nextId,
		Title:       input.Title,
		Description: input.Description,
		Deadline:    input.Deadline,
		Quantity:    input.Quantity,
		Units:       input.Units,
		Tags:        input.Tags,
		Status:      input.Status,
		OriginERP:   input.OriginERP,
	}
	r.nextId++

	return request, nil
}

func (r *fakeRequestRepo) CreateRequestFromERP(_ context.Context, input *entity.CreateRequestInput) (bool, error) {
	if err, ok := r.failOn[input.OriginERP]; ok {
		return false, err
	}
	if r.known[input.OriginERP] {
		return false, nil
	}
	r.known[input.OriginERP] = true
	r.created = append(r.created, input)

	return true, nil
}

func (r *fakeRequestRepo) GetOpenRequests(_ context.Context) ([]entity.Request, error) {
	return r.open, nil
}

type fakeOfferRepo struct {
	offers     map[int64]*entity.Offer
	nextId     int64
	winner     *entity.Offer
	siblings   []entity.Offer
	selectErr  error
	selectedId int64
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{offers: map[int64]*entity.Offer{}, nextId: 1}
}

func (r *fakeOfferRepo) CreateOffer(_ context.Context, input *entity.SubmitOfferInput) (*entity.Offer, error) {
	offer := &entity.Offer{
		Id:           r.nextId,
		SupplierId:   input.SupplierId,
		RequestId:    input.RequestId,
		Price:        input.Price,
		DeliveryTime: input.DeliveryTime,
		Conditions:   input.Conditions,
		Attachments:  input.Attachments,
		Photo:        input.Photo,
		Status:       entity.OfferPending,
		CreatedAt:    "2026-01-15T10:00:00Z",
	}
	r.offers[offer.Id] = offer
	r.nextId++

	return offer, nil
}

func (r *fakeOfferRepo) GetOfferById(_ context.Context, id int64) (*entity.Offer, error) {
	o, ok := r.offers[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return o, nil
}

func (r *fakeOfferRepo) GetRequestOffers(_ context.Context, requestId int64) ([]entity.Offer, error) {
	var out []entity.Offer
	for _, o := range r.offers {
		if o.RequestId == requestId {
			out = append(out, *o)
		}
	}

	return out, nil
}

func (r *fakeOfferRepo) GetAllOffers(_ context.Context) ([]entity.Offer, error) {
	var out []entity.Offer
	for _, o := range r.offers {
		out = append(out, *o)
	}

	return out, nil
}

func (r *fakeOfferRepo) SelectWinner(_ context.Context, offerId int64) (*entity.Offer, []entity.Offer, error) {
	r.selectedId = offerId
	if r.selectErr != nil {
		return nil, nil, r.selectErr
	}

	return r.winner, r.siblings, nil
}

type fakeEmailConfigRepo struct {
	config   *entity.EmailConfig
	lastKept bool
	err      error
}

func (r *fakeEmailConfigRepo) GetEmailConfig(_ context.Context) (*entity.EmailConfig, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.config == nil {
		return nil, repo_errors.ErrNotFound
	}
	copied := *r.config

	return &copied, nil
}

func (r *fakeEmailConfigRepo) SaveEmailConfig(_ context.Context, input *entity.SaveEmailConfigInput, keepPassword bool) (*entity.EmailConfig, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.config == nil {
		return nil, repo_errors.ErrNotFound
	}
	r.lastKept = keepPassword
	r.config.SMTPHost = input.SMTPHost
	r.config.SMTPPort = input.SMTPPort
	r.config.SMTPUser = input.SMTPUser
	r.config.SMTPFrom = input.SMTPFrom
	r.config.UITheme = input.UITheme
	r.config.LoginImageURL = input.LoginImageURL
	if !keepPassword {
		r.config.SMTPPassword = input.SMTPPassword
	}
	copied := *r.config

	return &copied, nil
}

var errStore = errors.New("store unavailable")
