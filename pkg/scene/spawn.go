package scene

// Spawn hands a freshly loaded node to the frame loop
type Spawn struct {
	Node *Node
}

// Apply adds a spawned node to the scene. Only the first vehicle is kept;
// it reports whether the node was added.
func (s *Scene) Apply(sp Spawn) bool {
	if sp.Node == nil {
		return false
	}
	switch sp.Node.Kind {
	case KindBuilding:
		s.Buildings = append(s.Buildings, sp.Node)
	case KindVehicle:
		if s.Vehicle != nil {
			return false
		}
		s.Vehicle = sp.Node
	case KindGround:
		s.Ground = sp.Node
	default:
		return false
	}
	return true
}

// Drain applies every spawn already waiting on ch without blocking
func (s *Scene) Drain(ch <-chan Spawn) []*Node {
	var added []*Node
	for {
		select {
		case sp, ok := <-ch:
			if !ok {
				return added
			}
			if s.Apply(sp) {
				added = append(added, sp.Node)
			}
		default:
			return added
		}
	}
}
