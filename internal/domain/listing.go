package domain

// Listing is a childcare provider, club, event, job or agency advert.
// The listing service owns listings; the front end only reads and submits them.
type Listing struct {
	Title            string   `json:"title"`
	Category         string   `json:"category"`
	Subcategory      string   `json:"subcategory"`
	Town             string   `json:"town"`
	About            string   `json:"about"`
	Website          string   `json:"website"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Tags             []string `json:"tags"`
	FeaturedImageURL string   `json:"featuredImageUrl,omitempty"`
}

// Flag tags appended to submitted listings, in this order.
const (
	TagDBS      = "DBS"
	TagFirstAid = "First Aid"
	TagOfsted   = "Ofsted Registered"
	TagSEN      = "SEN"
)

// ListingFlags are the four checkbox attributes a listing can claim.
type ListingFlags struct {
	DBS      bool
	FirstAid bool
	Ofsted   bool
	SEN      bool
}

// Tags returns the set flags as tags in fixed order.
func (f ListingFlags) Tags() []string {
	var tags []string
	if f.DBS {
		tags = append(tags, TagDBS)
	}
	if f.FirstAid {
		tags = append(tags, TagFirstAid)
	}
	if f.Ofsted {
		tags = append(tags, TagOfsted)
	}
	if f.SEN {
		tags = append(tags, TagSEN)
	}
	return tags
}
