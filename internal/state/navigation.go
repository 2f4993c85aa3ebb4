package state

import "github.com/MKhiriev/go-bitcoin-connect/models"

func (s *State) pushRoute(route models.Route) {
	if route == s.Route {
		return
	}
	s.RouteHistory = append(s.RouteHistory, s.Route)
	s.Route = route
}

func (s *State) popRoute() models.Route {
	n := len(s.RouteHistory)
	if n == 0 {
		s.Route = models.RouteStart
		return s.Route
	}
	s.Route = s.RouteHistory[n-1]
	s.RouteHistory = s.RouteHistory[:n-1]
	return s.Route
}

func (s *State) resetRoute() {
	s.Route = models.RouteStart
	s.RouteHistory = nil
}

// PushRoute makes route the current route and remembers the previous one.
// Pushing the current route does nothing.
func (s *Store) PushRoute(route models.Route) {
	s.commit(func(st *State) bool {
		st.pushRoute(route)
		return true
	})
}

// PopRoute goes back to the previously visited route and returns it. With
// an empty history the start route is returned.
func (s *Store) PopRoute() models.Route {
	var route models.Route
	s.commit(func(st *State) bool {
		route = st.popRoute()
		return true
	})
	return route
}

// ClearRouteHistory returns to the start route with an empty history.
func (s *Store) ClearRouteHistory() {
	s.commit(func(st *State) bool {
		st.resetRoute()
		return true
	})
}
