package memory

import (
	"time"

	"ndjimba/internal/core/domain"
)

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SampleProperties returns the launch catalog of eight listings.
func SampleProperties() []domain.Property {
	return []domain.Property{
		{
			ID:           "1",
			Title:        "Appartement moderne à Akébé",
			Description:  "Bel appartement de 3 pièces dans un quartier calme. Parfait pour une famille ou des colocataires. Proche des commerces et des transports.",
			Type:         domain.TypeApartment,
			Price:        250000,
			Neighborhood: "Akébé Ville",
			City:         domain.CityLibreville,
			Surface:      75,
			Rooms:        3,
			Bathrooms:    1,
			Images: []string{
				"https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg",
				"https://images.pexels.com/photos/1643383/pexels-photo-1643383.jpeg",
				"https://images.pexels.com/photos/1571459/pexels-photo-1571459.jpeg",
			},
			Available:     true,
			Verified:      true,
			OwnerName:     "Jean Moussavou",
			OwnerPhone:    "+24174123456",
			OwnerWhatsApp: "+24174123456",
			CreatedAt:     mustTime("2024-05-12T10:30:00Z"),
			UpdatedAt:     mustTime("2024-05-12T10:30:00Z"),
		},
		{
			ID:           "2",
			Title:        "Studio meublé au Centre-ville",
			Description:  "Studio entièrement meublé et équipé en plein centre-ville, idéal pour un étudiant ou un jeune professionnel. Internet fibre optique inclus.",
			Type:         domain.TypeFurnishedStudio,
			Price:        180000,
			Neighborhood: "Centre-ville",
			City:         domain.CityLibreville,
			Surface:      30,
			Rooms:        1,
			Bathrooms:    1,
			Images: []string{
				"https://images.pexels.com/photos/1918291/pexels-photo-1918291.jpeg",
				"https://images.pexels.com/photos/1428348/pexels-photo-1428348.jpeg",
				"https://images.pexels.com/photos/275484/pexels-photo-275484.jpeg",
			},
			Available:     true,
			Verified:      true,
			OwnerName:     "Marie Obiang",
			OwnerPhone:    "+24165789012",
			OwnerWhatsApp: "+24165789012",
			CreatedAt:     mustTime("2024-05-15T14:45:00Z"),
			UpdatedAt:     mustTime("2024-05-15T14:45:00Z"),
		},
		{
			ID:           "3",
			Title:        "Villa spacieuse à Angondjé",
			Description:  "Magnifique villa de 5 chambres avec jardin et piscine dans un quartier résidentiel sécurisé. Idéale pour une famille nombreuse ou pour recevoir.",
			Type:         domain.TypeVilla,
			Price:        750000,
			Neighborhood: "Angondjé",
			City:         domain.CityAkanda,
			Surface:      220,
			Rooms:        6,
			Bathrooms:    3,
			Images: []string{
				"https://images.pexels.com/photos/3288102/pexels-photo-3288102.png",
				"https://images.pexels.com/photos/1029599/pexels-photo-1029599.jpeg",
				"https://images.pexels.com/photos/2091166/pexels-photo-2091166.jpeg",
			},
			Available:     true,
			Verified:      true,
			OwnerName:     "Bernard Ndong",
			OwnerPhone:    "+24177654321",
			OwnerWhatsApp: "+24177654321",
			CreatedAt:     mustTime("2024-05-18T09:15:00Z"),
			UpdatedAt:     mustTime("2024-05-18T16:30:00Z"),
		},
		{
			ID:           "4",
			Title:        "Chambre meublée à PK5",
			Description:  "Chambre meublée dans une maison familiale. Accès à la cuisine et à la salle de bain commune. Ambiance conviviale.",
			Type:         domain.TypeFurnishedRoom,
			Price:        80000,
			Neighborhood: "PK5",
			City:         domain.CityLibreville,
			Surface:      15,
			Rooms:        1,
			Bathrooms:    1,
			Images: []string{
				"https://images.pexels.com/photos/271624/pexels-photo-271624.jpeg",
				"https://images.pexels.com/photos/2631746/pexels-photo-2631746.jpeg",
				"https://images.pexels.com/photos/3935323/pexels-photo-3935323.jpeg",
			},
			Available:  true,
			Verified:   false,
			OwnerName:  "Sophie Mba",
			OwnerPhone: "+24166123789",
			CreatedAt:  mustTime("2024-05-19T11:20:00Z"),
			UpdatedAt:  mustTime("2024-05-19T11:20:00Z"),
		},
		{
			ID:           "5",
			Title:        "Maison familiale à Lalala",
			Description:  "Grande maison avec un jardin clôturé, idéale pour une famille. Quartier calme et sécurisé, proche des écoles.",
			Type:         domain.TypeHouse,
			Price:        380000,
			Neighborhood: "Lalala",
			City:         domain.CityLibreville,
			Surface:      120,
			Rooms:        4,
			Bathrooms:    2,
			Images: []string{
				"https://images.pexels.com/photos/106399/pexels-photo-106399.jpeg",
				"https://images.pexels.com/photos/1643383/pexels-photo-1643383.jpeg",
				"https://images.pexels.com/photos/2724749/pexels-photo-2724749.jpeg",
			},
			Available:     true,
			Verified:      true,
			OwnerName:     "Pierre Ondo",
			OwnerPhone:    "+24174567890",
			OwnerWhatsApp: "+24174567890",
			CreatedAt:     mustTime("2024-05-20T08:40:00Z"),
			UpdatedAt:     mustTime("2024-05-20T08:40:00Z"),
		},
		{
			ID:           "6",
			Title:        "Appartement meublé à Glass",
			Description:  "Appartement haut de gamme avec vue sur mer, sécurité 24/7 et parking souterrain. Proche des ambassades et des commerces de luxe.",
			Type:         domain.TypeFurnishedApartment,
			Price:        550000,
			Neighborhood: "Glass",
			City:         domain.CityLibreville,
			Surface:      95,
			Rooms:        3,
			Bathrooms:    2,
			Images: []string{
				"https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg",
				"https://images.pexels.com/photos/1918291/pexels-photo-1918291.jpeg",
				"https://images.pexels.com/photos/1643383/pexels-photo-1643383.jpeg",
			},
			Available:     true,
			Verified:      true,
			OwnerName:     "Cécile Nguema",
			OwnerPhone:    "+24165432198",
			OwnerWhatsApp: "+24165432198",
			CreatedAt:     mustTime("2024-05-21T15:10:00Z"),
			UpdatedAt:     mustTime("2024-05-21T15:10:00Z"),
		},
		{
			ID:           "7",
			Title:        "Terrain constructible à Angondjé",
			Description:  "Magnifique terrain plat de 800m² dans un quartier résidentiel. Idéal pour construction de villa. Titre foncier disponible.",
			Type:         domain.TypeLand,
			Price:        45000000,
			Neighborhood: "Angondjé",
			City:         domain.CityAkanda,
			Surface:      800,
			Rooms:        0,
			Bathrooms:    0,
			Images: []string{
				"https://images.pexels.com/photos/5997993/pexels-photo-5997993.jpeg",
				"https://images.pexels.com/photos/5997996/pexels-photo-5997996.jpeg",
				"https://images.pexels.com/photos/5997997/pexels-photo-5997997.jpeg",
			},
			Available:     true,
			Verified:      true,
			OwnerName:     "Paul Nzamba",
			OwnerPhone:    "+24166789012",
			OwnerWhatsApp: "+24166789012",
			CreatedAt:     mustTime("2024-05-22T09:00:00Z"),
			UpdatedAt:     mustTime("2024-05-22T09:00:00Z"),
		},
		{
			ID:           "8",
			Title:        "Terrain viabilisé à PK12",
			Description:  "Terrain de 500m² entièrement viabilisé avec eau et électricité. Quartier en plein développement. Parfait pour projet immobilier.",
			Type:         domain.TypeLand,
			Price:        25000000,
			Neighborhood: "PK12",
			City:         domain.CityLibreville,
			Surface:      500,
			Rooms:        0,
			Bathrooms:    0,
			Images: []string{
				"https://images.pexels.com/photos/5997989/pexels-photo-5997989.jpeg",
				"https://images.pexels.com/photos/5997990/pexels-photo-5997990.jpeg",
				"https://images.pexels.com/photos/5997991/pexels-photo-5997991.jpeg",
			},
			Available:  true,
			Verified:   true,
			OwnerName:  "Antoine Koumba",
			OwnerPhone: "+24174567123",
			CreatedAt:  mustTime("2024-05-23T10:30:00Z"),
			UpdatedAt:  mustTime("2024-05-23T10:30:00Z"),
		},
	}
}
