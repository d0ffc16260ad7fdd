package opt

type ReverseSorter[Obj any] struct {
	Objects []*Obj
	By      func(*Obj) float64
}

func (s *ReverseSorter[Obj]) Len() int {
	return len(s.Objects)
}

func (s *ReverseSorter[Obj]) Swap(i, j int) {
	s.Objects[i], s.Objects[j] = s.Objects[j], s.Objects[i]
}

func (s *ReverseSorter[obj]) Less(i, j int) bool {
	return s.By(s.Objects[i]) > s.By(s.Objects[j])
}
