package storefront

const customerAccessTokenCreateQuery = `mutation CustomerAccessTokenCreate($input: CustomerAccessTokenCreateInput!) {
  customerAccessTokenCreate(input: $input) {
    token {
      accessToken
      refreshToken
      expiresIn
    }
  }
}`

const getCustomerQuery = `query GetCustomer {
  customer {
    id
    firstName
    lastName
    email
    customerGroups {
      items {
        id
        name
      }
    }
  }
}`

const customerAccessTokenRefreshQuery = `mutation CustomerAccessTokenRefresh($input: CustomerAccessTokenRefreshInput!) {
  customerAccessTokenRefresh(input: $input) {
    token {
      accessToken
      refreshToken
      expiresIn
    }
  }
}`
