package store

import "driveschool-backend/models"

// Seed data for a fresh process. Each seed function returns a new slice so
// separate stores never share backing arrays.

func seedSettings() models.SiteSettings {
	return models.SiteSettings{
		SiteName:        "Tolworth Driving School",
		Phone:           "07727 444 743",
		Email:           "info@tolworthdriving.co.uk",
		Whatsapp:        "447727444743",
		Address:         "Tolworth, Surbiton, KT6 7QJ",
		HeroHeadline:    "Pass Your Driving Test with Confidence",
		HeroSubheadline: "The #1 choice for Tolworth Test Routes. We specialize in short-notice test cover and expert local tuition.",
		PrimaryColor:    "#0f172a",
		Images: models.SiteImages{
			HeroBg:   "https://i.ibb.co/N25fBf3X/woman-male-driving-instructor-driving-test-3.jpg",
			Features: "https://images.unsplash.com/photo-1549317661-bd32c8ce0db2?auto=format&fit=crop&q=80",
			AreasBg:  "https://images.unsplash.com/photo-1569336415962-a4bd9f69cd83?auto=format&fit=crop&q=80",
			AreasMap: "https://images.unsplash.com/photo-1524661135-423995f22d0b?auto=format&fit=crop&q=80",
		},
		GoogleReviewsURL: "https://google.com",
		Gallery: []string{
			"https://i.ibb.co/sp9x0RQz/IMG-6929.jpg",
			"https://i.ibb.co/6Rrb6GW4/IMG-6683.jpg",
			"https://i.ibb.co/F16w5Jy/IMG-6645.jpg",
			"https://i.ibb.co/gF3KVFMy/IMG-6563.jpg",
			"https://i.ibb.co/8DvjS1gP/IMG-6520.jpg",
			"https://i.ibb.co/MyjV5F74/IMG-6505.jpg",
			"https://i.ibb.co/wN2Djrz3/IMG-6450.jpg",
		},
	}
}

func seedServices() []models.Service {
	return []models.Service{
		// Regular lessons
		{
			ID:          "s1",
			Title:       "Manual Driving Lesson",
			Duration:    "2 Hours",
			Price:       75,
			Description: "Expert manual tuition. Master gear control and local Tolworth routes.",
			Features:    []string{"1-on-1 Tuition", "Pick up & Drop off", "Progress Tracking", "Theory Support"},
			Category:    models.CategoryStandard,
		},
		{
			ID:          "s2",
			Title:       "Automatic Driving Lesson",
			Duration:    "2 Hours",
			Price:       75,
			Description: "Stress-free automatic lessons. Focus on the road, not the gears.",
			Features:    []string{"Modern Auto Cars", "Faster Progress", "Nervous Friendly", "Traffic Management"},
			Category:    models.CategoryStandard,
			Popular:     true,
		},
		{
			ID:          "s3",
			Title:       "Refresher Lesson",
			Duration:    "2 Hours",
			Price:       80,
			Description: "For license holders needing a confidence boost or motorway practice.",
			Features:    []string{"Parking Practice", "Motorway Confidence", "Roundabout Safety", "Eco Driving"},
			Category:    models.CategoryStandard,
		},
		{
			ID:          "s4",
			Title:       "Pass Plus Course",
			Duration:    "6 Hours",
			Price:       240,
			Description: "Advanced training after passing your test. Six modules covering all driving conditions.",
			Features:    []string{"Insurance Discounts", "Motorway Training", "Night Driving", "Rural Roads"},
			Category:    models.CategoryStandard,
		},

		// Intensive packages
		{
			ID:          "p0",
			Title:       "10 Hours Block Booking",
			Duration:    "10 Hours",
			Price:       365,
			Description: "Our most popular starter block. Perfect for both manual and automatic learners.",
			Features:    []string{"Discounted Hourly Rate", "Flexible Scheduling", "Manual or Automatic", "Progress Record"},
			Category:    models.CategoryStandard,
			Popular:     true,
		},
		{
			ID:          "p1",
			Title:       "Starter Intensive",
			Duration:    "10 Hours",
			Price:       650,
			Description: "Perfect for beginners starting their journey. Save more on block bookings.",
			Features:    []string{"Discounted Rate", "Flexible Scheduling", "Priority Booking", "Syllabus Structured"},
			Category:    models.CategoryIntensive,
		},
		{
			ID:          "p2",
			Title:       "Midway Intensive",
			Duration:    "20 Hours",
			Price:       1250,
			Description: "Accelerate your learning. Ideal for those wanting to pass within 1-2 months.",
			Features:    []string{"Intensive Scheduling", "Mock Test Included", "Route Mastery", "Fast-Track Progress"},
			Category:    models.CategoryIntensive,
			Popular:     true,
		},
		{
			ID:          "p3",
			Title:       "Full Intensive",
			Duration:    "30 Hours",
			Price:       1850,
			Description: "Complete beginner to test-ready. The fastest way to get your license.",
			Features:    []string{"Total Mastery", "Multiple Mock Tests", "Test Booking Help", "Guaranteed Quality"},
			Category:    models.CategoryIntensive,
		},

		// Test preparation
		{
			ID:          "t1",
			Title:       "Practical Test Cover",
			Duration:    "3 Hours",
			Price:       140,
			Description: "Emergency or planned test cover. Includes warm-up and car hire for test.",
			Features:    []string{"Short Notice Available", "1 Hour Warm-up", "Car Hire for Test", "Debrief"},
			Category:    models.CategoryTestPrep,
		},
		{
			ID:          "t2",
			Title:       "Professional Mock Test",
			Duration:    "2 Hours",
			Price:       80,
			Description: "Simulate the real test conditions on actual Tolworth test routes.",
			Features:    []string{"Real Test Marking", "Route Familiarization", "Full Debrief", "Weakness ID"},
			Category:    models.CategoryTestPrep,
			Popular:     true,
		},
	}
}

func seedBookings() []models.Booking {
	return []models.Booking{
		{
			ID:           "b1",
			CustomerName: "Alice Smith",
			Email:        "alice@example.com",
			Phone:        "07123456789",
			ServiceID:    "s1",
			Date:         "2023-10-25",
			Postcode:     "KT6 7QJ",
			Transmission: models.TransmissionManual,
			Status:       models.BookingConfirmed,
			CreatedAt:    "2023-10-20T10:00:00Z",
		},
		{
			ID:           "b2",
			CustomerName: "John Doe",
			Email:        "john@example.com",
			Phone:        "07987654321",
			ServiceID:    "p1",
			Date:         "2023-10-26",
			Postcode:     "SW19 1AA",
			Transmission: models.TransmissionAutomatic,
			Status:       models.BookingPending,
			Notes:        "I am a nervous driver.",
			CreatedAt:    "2023-10-22T15:30:00Z",
		},
	}
}

func seedTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			ID:       "t1",
			Name:     "Sarah Jenkins",
			Rating:   5,
			Content:  "Passed first time with 0 minors! My instructor was so patient and knew all the Tolworth test routes perfectly.",
			Date:     "2025-01-15",
			Approved: true,
		},
		{
			ID:       "t2",
			Name:     "Mike Ross",
			Rating:   5,
			Content:  "Highly recommend. The 10-hour block booking was great value. I felt very prepared for the test.",
			Date:     "2024-12-20",
			Approved: true,
		},
		{
			ID:       "t3",
			Name:     "Emma Clarke",
			Rating:   5,
			Content:  "I failed twice with other schools but passed here on my first go. The mock tests are a game changer.",
			Date:     "2025-02-01",
			Approved: true,
		},
		{
			ID:       "t4",
			Name:     "David P.",
			Rating:   5,
			Content:  "Friendly, reliable and professional. The car is very easy to drive as well.",
			Date:     "2025-02-10",
			Approved: true,
		},
	}
}

func seedPosts() []models.BlogPost {
	return []models.BlogPost{
		{
			ID:       "p1",
			Title:    "Top 5 Tips for Passing at Tolworth Test Centre",
			Excerpt:  "The Tolworth roundabout can be tricky. Here is how to navigate it safely during your exam.",
			Content:  "Full content regarding roundabout navigation...",
			Author:   "Admin",
			Date:     "2023-10-10",
			Status:   models.PostPublished,
			ImageURL: "https://picsum.photos/800/400?random=1",
		},
		{
			ID:       "p2",
			Title:    "Changes to the Practical Driving Test 2024",
			Excerpt:  "Everything you need to know about the new sat-nav requirements.",
			Content:  "Full content regarding sat-nav...",
			Author:   "Admin",
			Date:     "2023-10-15",
			Status:   models.PostPublished,
			ImageURL: "https://picsum.photos/800/400?random=2",
		},
	}
}
