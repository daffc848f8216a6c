package analytics_test

import (
	"testing"

	"vivid-analytics/internal/models"

	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, startDate, endDate string) models.DateRange {
	t.Helper()
	r, err := models.NewDateRange(startDate, endDate)
	require.NoError(t, err)
	return r
}

func user(t *testing.T, id, region, registrationDate string) *models.User {
	t.Helper()
	registered, err := models.ParseDate(registrationDate)
	require.NoError(t, err)
	return &models.User{UserID: id, Region: region, RegistrationDate: registered}
}

func visitor(t *testing.T, id, region, registrationDate, firstVisitDate string) *models.User {
	t.Helper()
	u := user(t, id, region, registrationDate)
	visited, err := models.ParseDate(firstVisitDate)
	require.NoError(t, err)
	u.FirstVisitDate = &visited
	return u
}

func order(t *testing.T, id, userID, orderDate string, amount float64, status string) *models.Order {
	t.Helper()
	placed, err := models.ParseDate(orderDate)
	require.NoError(t, err)
	return &models.Order{OrderID: id, UserID: userID, OrderDate: placed, Amount: amount, Status: status}
}
