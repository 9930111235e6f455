package services

import (
	"fmt"
	"time"

	"github.com/helpkhazaana-eng/production-app/models"
	"github.com/helpkhazaana-eng/production-app/utils"
)

// TimeStatus describes the storefront clock for listing pages.
type TimeStatus struct {
	IsOpen            bool   `json:"is_open"`
	CurrentTime       string `json:"current_time"`
	Countdown         string `json:"countdown"`
	MinutesUntilOpen  int    `json:"minutes_until_open"`
	MinutesUntilClose int    `json:"minutes_until_close"`
	IsOpeningSoon     bool   `json:"is_opening_soon"`
	IsClosingSoon     bool   `json:"is_closing_soon"`
}

// StorefrontStatus computes open/closed state for the shared 9:00-21:00 IST
// window. Pure function of the given instant.
func StorefrontStatus(now time.Time) TimeStatus {
	ist := now.In(utils.IST)
	hour := ist.Hour()
	open := hour >= models.OpensAtHour && hour < models.ClosesAtHour

	status := TimeStatus{
		IsOpen:      open,
		CurrentTime: utils.FormatSheetTime(now),
	}

	if open {
		closeAt := time.Date(ist.Year(), ist.Month(), ist.Day(), models.ClosesAtHour, 0, 0, 0, utils.IST)
		status.MinutesUntilClose = int(closeAt.Sub(ist).Minutes())
		status.IsClosingSoon = status.MinutesUntilClose <= 30
		status.Countdown = countdownText("Closes", status.MinutesUntilClose, status.IsClosingSoon, "Open now")
		return status
	}

	openAt := time.Date(ist.Year(), ist.Month(), ist.Day(), models.OpensAtHour, 0, 0, 0, utils.IST)
	if hour >= models.ClosesAtHour {
		openAt = openAt.AddDate(0, 0, 1)
	}
	status.MinutesUntilOpen = int(openAt.Sub(ist).Minutes())
	status.IsOpeningSoon = status.MinutesUntilOpen <= 30
	status.Countdown = countdownText("Opens", status.MinutesUntilOpen, true, "")
	return status
}

func countdownText(verb string, minutes int, show bool, otherwise string) string {
	if !show {
		return otherwise
	}
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%s in %dh %dm", verb, h, m)
	}
	return fmt.Sprintf("%s in %d minutes", verb, m)
}
