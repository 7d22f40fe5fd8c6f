package directory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udyambridge/business-platform-go/models"
	"github.com/udyambridge/business-platform-go/store"
)

func newTestDirectory() *Directory {
	return New(store.NewMemStore())
}

func TestInvestorCredentialRoundTrip(t *testing.T) {
	dir := newTestDirectory()

	in := models.Investor{
		FullName: "Asha Patil",
		Age:      "24",
		DOB:      "2002-03-14",
		Aadhar:   "123456789012",
		Role:     "Student",
		Username: "asha",
		Password: "secret1",
	}
	require.NoError(t, dir.AddInvestor(in))

	got, err := dir.AuthenticateInvestor("asha", "secret1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, in, *got)

	// Wrong password is an absent result, not an error.
	got, err = dir.AuthenticateInvestor("asha", "wrong")
	require.NoError(t, err)
	require.Nil(t, got)

	// Credential match is case-sensitive exact equality.
	got, err = dir.AuthenticateInvestor("Asha", "secret1")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestAuthenticateFirstInsertedWins(t *testing.T) {
	dir := newTestDirectory()

	first := models.Investor{FullName: "First", Username: "dup", Password: "secret1"}
	second := models.Investor{FullName: "Second", Username: "dup", Password: "secret1"}
	require.NoError(t, dir.AddInvestor(first))
	require.NoError(t, dir.AddInvestor(second))

	got, err := dir.AuthenticateInvestor("dup", "secret1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "First", got.FullName)
}

func TestManagementCredentialRoundTrip(t *testing.T) {
	dir := newTestDirectory()

	admin := models.ManagementAdmin{
		CollegeName: "IIT Bombay",
		AdminName:   "R. Nair",
		Username:    "iitb",
		Password:    "campus1",
	}
	require.NoError(t, dir.AddManagement(admin))

	got, err := dir.AuthenticateManagement("iitb", "campus1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, admin, *got)

	got, err = dir.AuthenticateManagement("iitb", "nope")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestListsAreEmptyNotAbsent(t *testing.T) {
	dir := newTestDirectory()

	investors, err := dir.Investors()
	require.NoError(t, err)
	require.Empty(t, investors)

	ideas, err := dir.InvestmentIdeas()
	require.NoError(t, err)
	require.Empty(t, ideas)
}

func TestListOrderAndIdempotence(t *testing.T) {
	dir := newTestDirectory()
	dir.now = func() int64 { return 42 }

	a, err := dir.AddVolunteer(models.Volunteer{Name: "A", Department: "CS"})
	require.NoError(t, err)
	b, err := dir.AddVolunteer(models.Volunteer{Name: "B", Department: "EE"})
	require.NoError(t, err)

	list, err := dir.Volunteers()
	require.NoError(t, err)
	require.Equal(t, []models.Volunteer{a, b}, list)

	// Reading again without an intervening add yields the same sequence.
	again, err := dir.Volunteers()
	require.NoError(t, err)
	require.Equal(t, list, again)
}

func TestVolunteerIDStampedAtInsert(t *testing.T) {
	dir := newTestDirectory()
	dir.now = func() int64 { return 1700000000000 }

	// A caller-supplied id is overwritten; the id is not round-trippable.
	v, err := dir.AddVolunteer(models.Volunteer{ID: 7, Name: "Ground Agent"})
	require.NoError(t, err)
	require.Equal(t, int64(1700000000000), v.ID)

	list, err := dir.Volunteers()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, int64(1700000000000), list[0].ID)
}

func TestInvestmentIdeaStampAndFields(t *testing.T) {
	dir := newTestDirectory()
	dir.now = func() int64 { return 99 }

	idea, err := dir.AddInvestmentIdea(models.InvestmentIdea{
		BusinessName:    "Rural Handicraft Hub",
		Description:     "Artisan marketplace",
		Location:        "Nashik",
		FundingRequired: "500000",
		VerifiedBy:      "IIT Bombay",
	})
	require.NoError(t, err)
	require.Equal(t, int64(99), idea.ID)

	list, err := dir.InvestmentIdeas()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, idea, list[0])
}

func TestAddDoesNotValidateFields(t *testing.T) {
	dir := newTestDirectory()

	// Validation is a caller-side concern; the directory appends as given.
	require.NoError(t, dir.AddInvestor(models.Investor{Username: "x", Password: "1", Aadhar: "bad"}))

	list, err := dir.Investors()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "bad", list[0].Aadhar)
}
