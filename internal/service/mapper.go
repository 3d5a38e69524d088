package service

import (
	"procurement-portal/internal/entity"
	"time"
)

func mapSupplier(s *entity.Supplier) *entity.SupplierOutputModel {
	return &entity.SupplierOutputModel{
		Id:            s.Id,
		Name:          s.Name,
		Contact:       s.Contact,
		Email:         s.Email,
		Phone:         s.Phone,
		CreatedAt:     s.CreatedAt,
		Documents:     s.Documents,
		EarningsCount: s.EarningsCount,
		Active:        s.Active,
		IsReviewed:    s.IsReviewed,
		IsApproved:    s.IsApproved,
		IsAudited:     s.IsAudited,
	}
}

func mapSuppliers(suppliers []entity.Supplier) []entity.SupplierOutputModel {
	s := make([]entity.SupplierOutputModel, 0)
	for _, supplier := range suppliers {
		s = append(s, *mapSupplier(&supplier))
	}

	return s
}

func mapRequest(r *entity.Request) *entity.RequestOutputModel {
	return &entity.RequestOutputModel{
		Id:          r.Id,
		Title:       r.Title,
		Description: r.Description,
		Deadline:    r.Deadline.Format(time.RFC3339),
		Quantity:    r.Quantity,
		Units:       r.Units,
		Tags:        r.Tags,
		Status:      r.Status,
		OriginERP:   r.OriginERP,
	}
}

func mapRequests(requests []entity.Request) []entity.RequestOutputModel {
	s := make([]entity.RequestOutputModel, 0)
	for _, request := range requests {
		s = append(s, *mapRequest(&request))
	}

	return s
}

func mapOffer(o *entity.Offer) *entity.OfferOutputModel {
	return &entity.OfferOutputModel{
		Id:           o.Id,
		SupplierId:   o.SupplierId,
		RequestId:    o.RequestId,
		Price:        o.Price,
		DeliveryTime: o.DeliveryTime,
		Conditions:   o.Conditions,
		Attachments:  o.Attachments,
		Photo:        o.Photo,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
	}
}

func mapOffers(offers []entity.Offer) []entity.OfferOutputModel {
	s := make([]entity.OfferOutputModel, 0)
	for _, offer := range offers {
		s = append(s, *mapOffer(&offer))
	}

	return s
}
