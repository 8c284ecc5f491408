package transport

// Delegate receives results through one hook per resource plus a failure hook
type Delegate interface {
	LocationsReceived(data []byte)
	ConnectionsReceived(data []byte)
	StationboardReceived(data []byte)
	RequestFailed(err error)
}

// Deliver routes r to the hook matching its resource
func Deliver(d Delegate, r Result) {
	if r.Err != nil {
		d.RequestFailed(r.Err)
		return
	}

	switch r.Resource {
	case ResourceLocations:
		d.LocationsReceived(r.Body)
	case ResourceConnections:
		d.ConnectionsReceived(r.Body)
	case ResourceStationboard:
		d.StationboardReceived(r.Body)
	default:
		d.RequestFailed(NewNetworkError(r.Resource, 0, "unknown resource", nil))
	}
}

// Notify drains results into d on a new goroutine and returns immediately
func Notify(results <-chan Result, d Delegate) {
	go func() {
		for r := range results {
			Deliver(d, r)
		}
	}()
}
