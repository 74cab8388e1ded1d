package storefrontfake

import (
	"context"
	"errors"
	"sync"

	"github.com/storefrontkit/storefront-auth/storefront"
)

var _ storefront.API = (*FakeAPI)(nil)

// FakeAPI is an in-memory stand-in for the provider client. Each call
// delegates to the corresponding func when set and records the number
// of invocations.
type FakeAPI struct {
	lock sync.Mutex

	LoginFunc    func(email, password string) (*storefront.TokenSet, error)
	CustomerFunc func(accessToken string) (*storefront.Customer, error)
	RefreshFunc  func(refreshToken string) (*storefront.TokenSet, error)

	LoginCalls    int
	CustomerCalls int
	RefreshCalls  int
}

func NewFakeAPI() *FakeAPI {
	return &FakeAPI{}
}

func (f *FakeAPI) Login(_ context.Context, email, password string) (*storefront.TokenSet, error) {
	f.lock.Lock()
	f.LoginCalls++
	f.lock.Unlock()

	if f.LoginFunc == nil {
		return nil, errors.New("login not configured")
	}
	return f.LoginFunc(email, password)
}

func (f *FakeAPI) GetCustomer(_ context.Context, accessToken string) (*storefront.Customer, error) {
	f.lock.Lock()
	f.CustomerCalls++
	f.lock.Unlock()

	if f.CustomerFunc == nil {
		return nil, errors.New("customer fetch not configured")
	}
	return f.CustomerFunc(accessToken)
}

func (f *FakeAPI) RefreshToken(_ context.Context, refreshToken string) (*storefront.TokenSet, error) {
	f.lock.Lock()
	f.RefreshCalls++
	f.lock.Unlock()

	if f.RefreshFunc == nil {
		return nil, errors.New("refresh not configured")
	}
	return f.RefreshFunc(refreshToken)
}
