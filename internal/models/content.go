package models

import "encoding/json"

// GalleryImage — картинка галереи; URL уникален в пределах страницы
type GalleryImage struct {
	URL       string `json:"url"`
	Color     string `json:"color"`
	SortOrder int    `json:"sort_order"`
}

// Review хранится как есть и только пагинируется.
type Review = json.RawMessage

// Service — один из трёх блоков услуг на главной
type Service struct {
	Title       string
	Description string
	Image       string
}

// HomepageContent — плоская запись главной страницы
type HomepageContent struct {
	HeroImages []string

	HeroSubtitle   string
	HeroTitle      string
	HeroPriceText  string
	HeroPriceValue string
	HeroCTAText    string
	HeroCTALink    string

	OfferSubtitle string
	OfferTitle    string
	OfferCTAText  string
	OfferCTALink  string

	Services [3]Service
}

// DefaultHomepage — содержимое главной, когда CMS нет или она недоступна.
func DefaultHomepage() HomepageContent {
	return HomepageContent{
		HeroImages: []string{
			"/static/hero_mac/1.png",
			"/static/hero_mac/2.png",
			"/static/hero_mac/3.png",
		},
		HeroSubtitle:   "Perfect for Summer Evenings",
		HeroTitle:      "Casual and Stylish for All Seasons",
		HeroPriceText:  "Starting From",
		HeroPriceValue: "$129",
		HeroCTAText:    "SHOP NOW",
		HeroCTALink:    "/shop",
		OfferSubtitle:  "Services",
		OfferTitle:     "Discover Our Exclusive Offerings",
		OfferCTAText:   "Make a enquiry",
		OfferCTALink:   "#",
		Services: [3]Service{
			{
				Title:       "White Label Clothing",
				Description: "Just starting out? Select from our catalogue of products, add your branding and you're good to go. A great solution for small businesses & startup clothing brands.",
				Image:       "/static/services/1.svg",
			},
			{
				Title:       "Custom Clothing Manufacturing",
				Description: "Looking for something unique? With our expert guidance, you can design fully custom products, selecting everything from fabrics and sizing to adding your own creative twist. We'll support you every step of the way.",
				Image:       "/static/services/2.svg",
			},
			{
				Title:       "Garment Design Services",
				Description: "Need assistance with bringing your ideas to life? We cover everything from start to finish and help businesses with their brand development.",
				Image:       "/static/services/3.svg",
			},
		},
	}
}
