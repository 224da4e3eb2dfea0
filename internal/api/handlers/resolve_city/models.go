package resolve_city

import (
	usecase "github.com/rainbowtours/RTG-BookingService/internal/usecase/resolve_city"
)

// Request тело запроса POST /cities/resolve
type Request struct {
	CityName    string `json:"cityName"`
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
}

func (r *Request) ToUseCaseRequest() *usecase.Request {
	return &usecase.Request{
		CityName:    r.CityName,
		CountryCode: r.CountryCode,
		CountryName: r.CountryName,
	}
}

// Response результат резолва города
type Response struct {
	CityID  int64  `json:"cityId"`
	Slug    string `json:"slug"`
	Created bool   `json:"created"`
}

func FromUseCaseResponse(resp *usecase.Response) *Response {
	return &Response{
		CityID:  resp.CityID,
		Slug:    resp.Slug,
		Created: resp.Created,
	}
}
