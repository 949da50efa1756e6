package catalog

// Object carries the fields every bucket record shares.
type Object struct {
	ID         string `json:"id"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Type       string `json:"type,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
}

// Image is a bucket media reference.
type Image struct {
	URL      string `json:"url"`
	ImgixURL string `json:"imgix_url"`
}

// SelectOption is the key/value pair backing select-dropdown fields.
type SelectOption struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Product struct {
	Object
	Metadata ProductMetadata `json:"metadata"`
}

type ProductMetadata struct {
	ProductName      *string       `json:"product_name,omitempty"`
	Description      *string       `json:"description,omitempty"`
	Price            *float64      `json:"price,omitempty"`
	ProductImages    []Image       `json:"product_images,omitempty"`
	DesignerBrand    *string       `json:"designer_brand,omitempty"`
	Category         *SelectOption `json:"category,omitempty"`
	SizesAvailable   []string      `json:"sizes_available,omitempty"`
	Materials        *string       `json:"materials,omitempty"`
	CareInstructions *string       `json:"care_instructions,omitempty"`
	InStock          *bool         `json:"in_stock,omitempty"`
	FeaturedProduct  *bool         `json:"featured_product,omitempty"`
}

type Category struct {
	Object
	Metadata CategoryMetadata `json:"metadata"`
}

type CategoryMetadata struct {
	CategoryName     *string `json:"category_name,omitempty"`
	Description      *string `json:"description,omitempty"`
	CategoryImage    *Image  `json:"category_image,omitempty"`
	FeaturedCategory *bool   `json:"featured_category,omitempty"`
	SortOrder        *int    `json:"sort_order,omitempty"`
}

type Collection struct {
	Object
	Metadata CollectionMetadata `json:"metadata"`
}

type CollectionMetadata struct {
	CollectionName     *string   `json:"collection_name,omitempty"`
	Description        *string   `json:"description,omitempty"`
	CollectionImage    *Image    `json:"collection_image,omitempty"`
	Products           []Product `json:"products,omitempty"`
	SeasonYear         *string   `json:"season_year,omitempty"`
	FeaturedCollection *bool     `json:"featured_collection,omitempty"`
}

type Review struct {
	Object
	Metadata ReviewMetadata `json:"metadata"`
}

type ReviewMetadata struct {
	Product          *Product      `json:"product,omitempty"`
	CustomerName     *string       `json:"customer_name,omitempty"`
	Rating           *SelectOption `json:"rating,omitempty"`
	ReviewTitle      *string       `json:"review_title,omitempty"`
	ReviewContent    *string       `json:"review_content,omitempty"`
	VerifiedPurchase *bool         `json:"verified_purchase,omitempty"`
	SizePurchased    *SelectOption `json:"size_purchased,omitempty"`
	Approved         *bool         `json:"approved,omitempty"`
}

type Author struct {
	Object
	Metadata AuthorMetadata `json:"metadata"`
}

type AuthorMetadata struct {
	Name        *string      `json:"name,omitempty"`
	Bio         *string      `json:"bio,omitempty"`
	Avatar      *Image       `json:"avatar,omitempty"`
	Email       *string      `json:"email,omitempty"`
	SocialLinks *SocialLinks `json:"social_links,omitempty"`
}

type SocialLinks struct {
	Twitter   *string `json:"twitter,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
}

type BlogCategory struct {
	Object
	Metadata BlogCategoryMetadata `json:"metadata"`
}

type BlogCategoryMetadata struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

type Post struct {
	Object
	Metadata PostMetadata `json:"metadata"`
}

type PostMetadata struct {
	Title         *string       `json:"title,omitempty"`
	Excerpt       *string       `json:"excerpt,omitempty"`
	Content       *string       `json:"content,omitempty"`
	FeaturedImage *Image        `json:"featured_image,omitempty"`
	Author        *Author       `json:"author,omitempty"`
	Category      *BlogCategory `json:"category,omitempty"`
	Tags          []string      `json:"tags,omitempty"`
	PublishedDate *string       `json:"published_date,omitempty"`
	FeaturedPost  *bool         `json:"featured_post,omitempty"`
	ReadTime      *int          `json:"read_time,omitempty"`
}

type Event struct {
	Object
	Metadata EventMetadata `json:"metadata"`
}

type EventMetadata struct {
	EventName        *string       `json:"event_name,omitempty"`
	Description      *string       `json:"description,omitempty"`
	EventDate        *string       `json:"event_date,omitempty"`
	EventTime        *string       `json:"event_time,omitempty"`
	Location         *string       `json:"location,omitempty"`
	EventImage       *Image        `json:"event_image,omitempty"`
	EventType        *SelectOption `json:"event_type,omitempty"`
	Price            *float64      `json:"price,omitempty"`
	RegistrationLink *string       `json:"registration_link,omitempty"`
	FeaturedEvent    *bool         `json:"featured_event,omitempty"`
}

type User struct {
	Object
	Metadata UserMetadata `json:"metadata"`
}

type UserMetadata struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	PasswordHash *string `json:"password_hash,omitempty"`
	CreatedAt    *string `json:"created_at,omitempty"`
	LastLogin    *string `json:"last_login,omitempty"`
	ProfileImage *Image  `json:"profile_image,omitempty"`
}

type TermsOfService struct {
	Object
	Metadata TermsMetadata `json:"metadata"`
}

type TermsMetadata struct {
	PageTitle      *string        `json:"page_title,omitempty"`
	LastUpdated    *string        `json:"last_updated,omitempty"`
	Sections       []TermsSection `json:"sections,omitempty"`
	ContactEmail   *string        `json:"contact_email,omitempty"`
	ContactPhone   *string        `json:"contact_phone,omitempty"`
	ContactAddress *string        `json:"contact_address,omitempty"`
}

type TermsSection struct {
	SectionTitle   string `json:"section_title"`
	SectionContent string `json:"section_content"`
	SectionOrder   int    `json:"section_order"`
}
