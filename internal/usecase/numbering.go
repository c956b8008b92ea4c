package usecase

import (
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"
)

// Element kinds in display order. Numbering is always recomputed from
// the PNR's current content; it is never cached.
type elementKind int

const (
	elemPassenger elementKind = iota
	elemSegment
	elemContact
	elemEmailContact
	elemReceivedFrom
	elemTicketing
	elemRemark
)

// elementRef points one display number at its backing item. index is
// the position inside the category's slice; categories that hold a
// single value use index 0.
type elementRef struct {
	kind  elementKind
	index int
}

// elementIndex produces the ordered element list for a PNR:
// passengers, segments, contact, email contact, received-from,
// ticketing, remarks. The formatter and XE deletion both consume this
// single list, so displayed numbers and delete targets cannot
// diverge.
func elementIndex(p *entity.PNR) []elementRef {
	var refs []elementRef
	for i := range p.Passengers {
		refs = append(refs, elementRef{elemPassenger, i})
	}
	for i := range p.Segments {
		refs = append(refs, elementRef{elemSegment, i})
	}
	if p.Contact != nil {
		refs = append(refs, elementRef{elemContact, 0})
	}
	if p.EmailContact != nil {
		refs = append(refs, elementRef{elemEmailContact, 0})
	}
	if p.ReceivedFrom != "" {
		refs = append(refs, elementRef{elemReceivedFrom, 0})
	}
	if p.Ticketing != nil {
		refs = append(refs, elementRef{elemTicketing, 0})
	}
	for i := range p.Remarks {
		refs = append(refs, elementRef{elemRemark, i})
	}
	return refs
}
