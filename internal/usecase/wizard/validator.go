package wizard

import (
	"time"

	domainFreight "freightconnect/internal/domain/freight"
	appErrors "freightconnect/pkg/errors"

	"github.com/jinzhu/now"
)

const dateLayout = "2006-01-02"

// ValidateStep runs the validation predicate for one wizard step. Field keys
// follow the product's form field names and are stable for clients.
func ValidateStep(s *Session, step int) appErrors.ValidationErrors {
	switch step {
	case StepCollaboratorsOrigin:
		return validateCollaboratorsOrigin(s)
	case StepDestinationsCargo:
		return validateDestinationsCargo(s)
	case StepLogisticsCommercial:
		return validateLogisticsCommercial(s)
	case StepTollExtras:
		return validateTollExtras(s)
	default:
		errs := appErrors.ValidationErrors{}
		errs.Add("step", "unknown step")
		return errs
	}
}

// ValidateAll collects errors across every step; used to gate submission.
func ValidateAll(s *Session) appErrors.ValidationErrors {
	errs := appErrors.ValidationErrors{}
	for step := StepCollaboratorsOrigin; step <= stepCount; step++ {
		errs.Merge(ValidateStep(s, step))
	}
	return errs
}

func validateCollaboratorsOrigin(s *Session) appErrors.ValidationErrors {
	errs := appErrors.ValidationErrors{}
	if len(s.Collaborators) == 0 {
		errs.Add("collaborators", "select at least one responsible collaborator")
	}
	if s.OriginState == "" {
		errs.Add("origemEstado", "origin state is required")
	}
	if s.OriginCity == "" {
		errs.Add("origemCidade", "origin city is required")
	}
	return errs
}

func validateDestinationsCargo(s *Session) appErrors.ValidationErrors {
	errs := appErrors.ValidationErrors{}
	if len(s.Destinations) == 0 {
		errs.Add("destinos", "add at least one destination")
	}
	if s.MerchandiseType == "" {
		errs.Add("tipoMercadoria", "merchandise type is required")
	}
	return errs
}

func validateLogisticsCommercial(s *Session) appErrors.ValidationErrors {
	errs := appErrors.ValidationErrors{}

	if s.CollectionDate == "" {
		errs.Add("dataColeta", "collection date is required")
	} else if parsed, err := time.ParseInLocation(dateLayout, s.CollectionDate, time.Local); err != nil {
		errs.Add("dataColeta", "collection date must be YYYY-MM-DD")
	} else if parsed.Before(now.BeginningOfDay()) {
		errs.Add("dataColeta", "collection date must not be in the past")
	}

	if s.CollectionTime == "" {
		errs.Add("horaColeta", "collection time is required")
	}

	if len(s.VehicleTypes) == 0 {
		errs.Add("tiposVeiculos", "select at least one vehicle type")
	}
	if len(s.BodyTypes) == 0 {
		errs.Add("tiposCarrocerias", "select at least one body type")
	}

	if s.ValueMode == domainFreight.ValueModeFixed {
		if s.OfferedValue == nil || *s.OfferedValue <= 0 {
			errs.Add("valorOferecido", "offered value must be greater than zero")
		}
	}

	if s.FreightType == domainFreight.TypeAggregation {
		for _, row := range s.PriceTables {
			if row.RangeEndKm <= row.RangeStartKm || row.Price <= 0 {
				errs.Add("tabelaPrecos", "price table rows need a positive price and an increasing distance range")
				break
			}
		}
	}

	return errs
}

func validateTollExtras(s *Session) appErrors.ValidationErrors {
	errs := appErrors.ValidationErrors{}
	if s.TollPaidBy == "" {
		errs.Add("pedagioPagoPor", "toll payer is required")
	}
	if s.TollPaidBy == domainFreight.TollPaidByCompany && s.TollDirection == "" {
		errs.Add("pedagioDirecao", "toll direction is required when the company pays the toll")
	}
	return errs
}
