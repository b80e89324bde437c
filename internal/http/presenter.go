package http

import (
	"github.com/guttosm/food-details-service/internal/domain/dto"
	"github.com/guttosm/food-details-service/internal/i18n"
	"github.com/guttosm/food-details-service/internal/pricing"
	"github.com/guttosm/food-details-service/internal/screen"
	"github.com/shopspring/decimal"
)

// Presenter renders screen snapshots as localized view models.
type Presenter struct {
	formatter  *pricing.Formatter
	translator *i18n.Translator
}

// NewPresenter creates a Presenter. A nil formatter renders plain two-decimal amounts.
func NewPresenter(formatter *pricing.Formatter) *Presenter {
	return &Presenter{
		formatter:  formatter,
		translator: i18n.GetTranslator(),
	}
}

// Render builds the view of a snapshot for a locale.
func (p *Presenter) Render(snap screen.Snapshot, locale string) dto.ScreenView {
	labels := p.translator.Labels(locale)

	view := dto.ScreenView{
		SessionID:      snap.SessionID,
		Status:         snap.Status.String(),
		Extras:         make([]dto.ExtraView, 0, len(snap.Extras)),
		Quantity:       snap.Quantity,
		Total:          snap.Total,
		FormattedTotal: snap.FormattedTotal,
		Favorite:       snap.Favorite,
		FavoriteIcon:   dto.FavoriteIcon(snap.Favorite),
		Labels: dto.ScreenLabels{
			ExtrasTitle:   labels[i18n.LabelKeyExtrasTitle],
			TotalTitle:    labels[i18n.LabelKeyTotalTitle],
			ConfirmButton: labels[i18n.LabelKeyConfirmButton],
		},
		Version: snap.Version,
	}

	if snap.Status == screen.StatusReady {
		view.Food = &dto.FoodView{
			ID:             snap.Food.ID,
			Name:           snap.Food.Name,
			Description:    snap.Food.Description,
			ImageURL:       snap.Food.ImageURL,
			Category:       snap.Food.Category,
			Price:          snap.Food.Price,
			FormattedPrice: snap.FormattedPrice,
		}
	}

	for _, e := range snap.Extras {
		view.Extras = append(view.Extras, dto.ExtraView{
			ID:             e.ID,
			Name:           e.Name,
			Value:          e.Value,
			FormattedValue: p.format(e.Value),
			Quantity:       e.Quantity,
		})
	}

	if snap.Err != nil {
		status, key := errorStatus(snap.Err)
		view.Error = &dto.ScreenError{
			Code:    dto.ErrCodeFromStatus(status),
			Message: p.translator.Translate(key, locale),
		}
	}

	return view
}

// Navigation builds the response of a submitted order.
func (p *Presenter) Navigation(route string, params map[string]string, locale string) dto.NavigationResponse {
	return dto.NavigationResponse{
		Route:   route,
		Params:  params,
		Message: p.translator.Translate(i18n.LabelKeyOrderPlaced, locale),
	}
}

func (p *Presenter) format(amount decimal.Decimal) string {
	if p.formatter == nil {
		return amount.StringFixed(2)
	}
	return p.formatter.Format(amount)
}
