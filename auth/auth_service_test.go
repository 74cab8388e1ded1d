package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefrontkit/storefront-auth/auth"
	"github.com/storefrontkit/storefront-auth/sessions"
	"github.com/storefrontkit/storefront-auth/storefront"
	"github.com/storefrontkit/storefront-auth/storefront/storefrontfake"
	"github.com/storefrontkit/storefront-auth/users"
)

const (
	testUserEmail    = "john.doe@example.com"
	testUserPassword = "password123"
	testCustomerID   = "cust-1"
)

var testNow = time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

// testFixture holds all test dependencies
type testFixture struct {
	api     *storefrontfake.FakeAPI
	service *auth.Service
}

func setupTestFixture(t *testing.T, options ...auth.ServiceOption) *testFixture {
	t.Helper()

	api := storefrontfake.NewFakeAPI()
	options = append([]auth.ServiceOption{auth.WithNowTime(func() time.Time { return testNow })}, options...)
	service, err := auth.NewService(api, options...)
	require.NoError(t, err)

	return &testFixture{api: api, service: service}
}

func (f *testFixture) withValidLogin(tokens storefront.TokenSet) {
	f.api.LoginFunc = func(email, password string) (*storefront.TokenSet, error) {
		if email == testUserEmail && password == testUserPassword {
			t := tokens
			return &t, nil
		}
		return nil, storefront.ErrProviderRejected
	}
}

func (f *testFixture) withCustomer(customer storefront.Customer) {
	f.api.CustomerFunc = func(accessToken string) (*storefront.Customer, error) {
		c := customer
		return &c, nil
	}
}

func TestNewServiceRequiresClient(t *testing.T) {
	_, err := auth.NewService(nil)
	require.Error(t, err)
}

func TestSignIn(t *testing.T) {
	f := setupTestFixture(t)
	f.withValidLogin(storefront.TokenSet{AccessToken: "T1", RefreshToken: "R1", ExpiresIn: 3600})
	f.withCustomer(storefront.Customer{
		ID:        testCustomerID,
		FirstName: "John",
		LastName:  "Doe",
		Email:     testUserEmail,
		Groups:    []storefront.Group{{ID: "g1", Name: "wholesale"}},
	})

	result, err := f.service.SignIn(context.Background(), testUserEmail, testUserPassword)
	require.NoError(t, err)

	assert.Equal(t, &users.User{
		ID:            testCustomerID,
		Email:         testUserEmail,
		Name:          "John Doe",
		EmailVerified: true,
		Groups:        []users.Group{{ID: "g1", Name: "wholesale"}},
		CreatedAt:     testNow,
		UpdatedAt:     testNow,
	}, result.User)

	assert.Equal(t, &sessions.Session{
		ID:        "R1",
		UserID:    testCustomerID,
		Token:     "T1",
		ExpiresAt: testNow.Add(3600 * time.Second),
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}, result.Session)
}

func TestSignInWrongPassword(t *testing.T) {
	f := setupTestFixture(t)
	f.withValidLogin(storefront.TokenSet{AccessToken: "T1", RefreshToken: "R1", ExpiresIn: 3600})

	result, err := f.service.SignIn(context.Background(), testUserEmail, "wrong")
	assert.Nil(t, result)
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)

	var authErr *auth.Error
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, 401, authErr.Status)
	assert.Equal(t, "Invalid credentials", authErr.Message)

	// The profile fetch never runs when login fails
	assert.Equal(t, 0, f.api.CustomerCalls)
}

func TestSignInLoginTransportFailure(t *testing.T) {
	// A network failure at the login step is indistinguishable from
	// rejected credentials and maps to the same error.
	f := setupTestFixture(t)
	f.api.LoginFunc = func(email, password string) (*storefront.TokenSet, error) {
		return nil, errors.New("connection refused")
	}

	_, err := f.service.SignIn(context.Background(), testUserEmail, testUserPassword)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestSignInProfileFetchFailure(t *testing.T) {
	f := setupTestFixture(t)
	f.withValidLogin(storefront.TokenSet{AccessToken: "T1", RefreshToken: "R1", ExpiresIn: 3600})
	f.api.CustomerFunc = func(accessToken string) (*storefront.Customer, error) {
		return nil, storefront.ErrProviderRejected
	}

	result, err := f.service.SignIn(context.Background(), testUserEmail, testUserPassword)
	assert.Nil(t, result)
	require.ErrorIs(t, err, auth.ErrProfileFetchFailed)

	var authErr *auth.Error
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, 500, authErr.Status)
	assert.Equal(t, "Failed to fetch user info", authErr.Message)
}

func TestSignInTwiceYieldsDistinctSessions(t *testing.T) {
	f := setupTestFixture(t)
	logins := 0
	f.api.LoginFunc = func(email, password string) (*storefront.TokenSet, error) {
		logins++
		if logins == 1 {
			return &storefront.TokenSet{AccessToken: "T1", RefreshToken: "R1", ExpiresIn: 3600}, nil
		}
		return &storefront.TokenSet{AccessToken: "T2", RefreshToken: "R2", ExpiresIn: 3600}, nil
	}
	f.withCustomer(storefront.Customer{ID: testCustomerID, FirstName: "John", LastName: "Doe", Email: testUserEmail})

	first, err := f.service.SignIn(context.Background(), testUserEmail, testUserPassword)
	require.NoError(t, err)
	second, err := f.service.SignIn(context.Background(), testUserEmail, testUserPassword)
	require.NoError(t, err)

	assert.NotEqual(t, first.Session.ID, second.Session.ID)
	assert.Equal(t, first.User.ID, second.User.ID)
}

func testSession(expiresIn time.Duration) *sessions.Session {
	created := testNow.Add(-time.Hour)
	return &sessions.Session{
		ID:        "R1",
		UserID:    testCustomerID,
		Token:     "T1",
		ExpiresAt: testNow.Add(expiresIn),
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestEnsureFreshTokenStillValid(t *testing.T) {
	f := setupTestFixture(t)

	fresh := f.service.EnsureFresh(context.Background(), testSession(30*time.Minute))

	assert.Equal(t, "T1", fresh.Token)
	assert.False(t, fresh.Refreshed)
	assert.Nil(t, fresh.Session)
	// No network call is made above the threshold
	assert.Equal(t, 0, f.api.RefreshCalls)
}

func TestEnsureFreshWithinThreshold(t *testing.T) {
	f := setupTestFixture(t)
	f.api.RefreshFunc = func(refreshToken string) (*storefront.TokenSet, error) {
		require.Equal(t, "R1", refreshToken)
		return &storefront.TokenSet{AccessToken: "T2", RefreshToken: "R2", ExpiresIn: 3600}, nil
	}

	session := testSession(3 * time.Minute)
	fresh := f.service.EnsureFresh(context.Background(), session)

	assert.True(t, fresh.Refreshed)
	assert.Equal(t, "T2", fresh.Token)
	require.NotNil(t, fresh.Session)
	assert.Equal(t, "R2", fresh.Session.ID)
	assert.Equal(t, "T2", fresh.Session.Token)
	assert.Equal(t, testNow.Add(3600*time.Second), fresh.Session.ExpiresAt)
	assert.Equal(t, session.CreatedAt, fresh.Session.CreatedAt)
	assert.Equal(t, testNow, fresh.Session.UpdatedAt)
	assert.Equal(t, session.UserID, fresh.Session.UserID)

	// The input session is never mutated
	assert.Equal(t, "R1", session.ID)
	assert.Equal(t, "T1", session.Token)
}

func TestEnsureFreshAlreadyExpired(t *testing.T) {
	// An already expired token takes the same path as one expiring
	// within the threshold.
	f := setupTestFixture(t)
	f.api.RefreshFunc = func(refreshToken string) (*storefront.TokenSet, error) {
		return &storefront.TokenSet{AccessToken: "T2", RefreshToken: "R2", ExpiresIn: 3600}, nil
	}

	fresh := f.service.EnsureFresh(context.Background(), testSession(-10*time.Minute))

	assert.True(t, fresh.Refreshed)
	assert.Equal(t, "T2", fresh.Token)
	assert.Equal(t, 1, f.api.RefreshCalls)
}

func TestEnsureFreshRefreshFails(t *testing.T) {
	// Refresh failure falls open: the caller keeps the current token.
	f := setupTestFixture(t)
	f.api.RefreshFunc = func(refreshToken string) (*storefront.TokenSet, error) {
		return nil, errors.New("bad gateway")
	}

	fresh := f.service.EnsureFresh(context.Background(), testSession(3*time.Minute))

	assert.False(t, fresh.Refreshed)
	assert.Equal(t, "T1", fresh.Token)
	assert.Nil(t, fresh.Session)
	assert.Equal(t, 1, f.api.RefreshCalls)
}

func TestEnsureFreshCustomThreshold(t *testing.T) {
	f := setupTestFixture(t, auth.WithRefreshThreshold(10*time.Minute))
	f.api.RefreshFunc = func(refreshToken string) (*storefront.TokenSet, error) {
		return &storefront.TokenSet{AccessToken: "T2", RefreshToken: "R2", ExpiresIn: 3600}, nil
	}

	// 8 minutes of validity is inside a 10 minute threshold
	fresh := f.service.EnsureFresh(context.Background(), testSession(8*time.Minute))
	assert.True(t, fresh.Refreshed)
}
