package service

// ServiceCenter is where every trailer sent for service is relocated.
type ServiceCenter struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

var DefaultServiceCenter = ServiceCenter{
	Name:      "Central Service Depot",
	Address:   "ul. Warsztatowa 12, Warszawa",
	Latitude:  52.2297,
	Longitude: 21.0122,
}
