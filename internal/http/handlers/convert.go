package handlers

import "bloodlink/internal/domain"

func (req registerDonorRequest) toModel() *domain.Donor {
	return &domain.Donor{
		UserID:     req.UserID,
		HospitalID: req.HospitalID,
		Name:       req.Name,
		Phone:      req.Phone,
		BloodGroup: req.BloodGroup,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	}
}

func (req updateDonorRequest) toModel() domain.PartialDonorUpdate {
	return domain.PartialDonorUpdate{
		ID:                 req.ID,
		Name:               req.Name,
		Phone:              req.Phone,
		BloodGroup:         req.BloodGroup,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		IsActive:           req.IsActive,
		VerificationStatus: req.VerificationStatus,
	}
}

func donorToResponse(d domain.Donor) donorDTO {
	return donorDTO{
		ID:                 d.ID,
		UserID:             d.UserID,
		HospitalID:         d.HospitalID,
		Name:               d.Name,
		Phone:              d.Phone,
		BloodGroup:         d.BloodGroup,
		Latitude:           d.Latitude,
		Longitude:          d.Longitude,
		IsActive:           d.IsActive,
		VerificationStatus: d.VerificationStatus,
		LastUpdated:        d.LastUpdated,
	}
}

func donorsToResponse(list []domain.Donor) []donorDTO {
	out := make([]donorDTO, 0, len(list))
	for _, d := range list {
		out = append(out, donorToResponse(d))
	}
	return out
}

func (req registerRecipientRequest) toModel() *domain.Recipient {
	return &domain.Recipient{
		UserID:     req.UserID,
		HospitalID: req.HospitalID,
		Name:       req.Name,
		Phone:      req.Phone,
		BloodGroup: req.BloodGroup,
		Urgency:    req.Urgency,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	}
}

func recipientToResponse(rec domain.Recipient) recipientDTO {
	return recipientDTO{
		ID:               rec.ID,
		UserID:           rec.UserID,
		HospitalID:       rec.HospitalID,
		Name:             rec.Name,
		Phone:            rec.Phone,
		BloodGroup:       rec.BloodGroup,
		Urgency:          rec.Urgency,
		Status:           rec.Status,
		Latitude:         rec.Latitude,
		Longitude:        rec.Longitude,
		RegistrationDate: rec.RegistrationDate,
	}
}

func recipientsToResponse(list []domain.Recipient) []recipientDTO {
	out := make([]recipientDTO, 0, len(list))
	for _, rec := range list {
		out = append(out, recipientToResponse(rec))
	}
	return out
}

func matchToResponse(m domain.Match) matchDTO {
	return matchDTO{
		ID:            m.ID,
		DonorID:       m.DonorID,
		RecipientID:   m.RecipientID,
		Score:         m.Score,
		DistanceKm:    m.DistanceKm,
		Compatibility: m.Compatibility,
		Reason:        m.Reason,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
	}
}

func matchesToResponse(list []domain.Match) []matchDTO {
	out := make([]matchDTO, 0, len(list))
	for _, m := range list {
		out = append(out, matchToResponse(m))
	}
	return out
}

func (req sendAlertRequest) toSpec() domain.AlertSpec {
	return domain.AlertSpec{
		Message:      req.Message,
		Urgency:      req.Urgency,
		TargetGroups: req.TargetGroups,
	}
}

func alertToResponse(a domain.Alert) alertDTO {
	return alertDTO{
		ID:           a.ID,
		Message:      a.Message,
		Urgency:      a.Urgency,
		TargetGroups: a.TargetGroups,
		IsActive:     a.IsActive,
		CreatedAt:    a.CreatedAt,
	}
}

func alertsToResponse(list []domain.Alert) []alertDTO {
	out := make([]alertDTO, 0, len(list))
	for _, a := range list {
		out = append(out, alertToResponse(a))
	}
	return out
}

func hospitalToResponse(h domain.Hospital) hospitalDTO {
	return hospitalDTO{
		ID:                 h.ID,
		Name:               h.Name,
		Address:            h.Address,
		Phone:              h.Phone,
		Email:              h.Email,
		Latitude:           h.Latitude,
		Longitude:          h.Longitude,
		VerificationStatus: h.VerificationStatus,
		CreatedAt:          h.CreatedAt,
	}
}

func hospitalsToResponse(list []domain.Hospital) []hospitalDTO {
	out := make([]hospitalDTO, 0, len(list))
	for _, h := range list {
		out = append(out, hospitalToResponse(h))
	}
	return out
}
