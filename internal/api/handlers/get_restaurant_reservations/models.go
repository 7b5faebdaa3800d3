package get_restaurant_reservations

import (
	"net/url"
	"strconv"
	"time"

	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
	"github.com/adesombergh/yeety-book-test-sub000/internal/service/reservations/models"
)

// ToServiceRequest собирает запрос к сервису из path и query параметров
// Query params: startDate, endDate (YYYY-MM-DD), status, includeCancelled (bool)
func ToServiceRequest(restaurantID int64, query url.Values) (*models.GetRestaurantReservationsRequest, error) {
	req := &models.GetRestaurantReservationsRequest{
		RestaurantID: restaurantID,
	}

	if startStr := query.Get("startDate"); startStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &start
	}

	if endStr := query.Get("endDate"); endStr != "" {
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			return nil, err
		}
		// Конец периода включительно - расширяем до конца дня
		endOfDay := end.Add(24*time.Hour - time.Second)
		req.EndDate = &endOfDay
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	if includeStr := query.Get("includeCancelled"); includeStr != "" {
		include, err := strconv.ParseBool(includeStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = include
	}

	return req, nil
}
