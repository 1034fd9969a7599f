// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package store implements the in-memory content catalog. This file,
// `seed.go`, holds the bundled catalog: the fixed set of videos, books,
// featured content, and study materials the application ships with. The seed
// runs once inside NewWithCatalog; the store is read-only afterwards.
package store

import "github.com/govardhan-digital/content-search/internal/core/model"

// NewWithCatalog creates a ContentStore pre-populated with the bundled
// catalog of videos, books, featured content, and study materials.
//
// Outputs:
//   - *ContentStore: A fully seeded, ready-to-serve store.
func NewWithCatalog() *ContentStore {
	s := New()
	seedVideos(s)
	seedBooks(s)
	s.featured = seedFeaturedContent()
	s.materials = seedStudyMaterials()
	return s
}

func seedVideos(s *ContentStore) {
	s.AddVideo(&model.Video{
		Title:        "Exclusive interview with Puri Shankaracharya Ji | Govardhan Math",
		Description:  "An exclusive interview with Puri Shankaracharya Ji discussing Advaita Vedanta philosophy.",
		ThumbnailURL: "https://img.youtube.com/vi/LrVLAVVaLHs/maxresdefault.jpg",
		VideoURL:     "https://www.youtube.com/watch?v=LrVLAVVaLHs",
		YouTubeID:    "LrVLAVVaLHs",
		Duration:     "6:44",
		Platform:     "YouTube",
		Channel:      "Govardhan Math, Puri",
		UploadDate:   "14 Sept 2023",
		Views:        "25K views",
		Likes:        1250,
		Subscribers:  "450K",
		Category:     "Interview",
		Tags:         []string{"Shankaracharya", "Interview", "Philosophy"},
	})
	s.AddVideo(&model.Video{
		Title:        "Govardhan Math, Puri: Hindu Dharma Principles and Modern Applications",
		Description:  "Learn about core Hindu Dharma principles and how they apply to modern life, as taught by the Shankaracharya of Puri.",
		ThumbnailURL: "https://img.youtube.com/vi/yxTR5UoSf-M/maxresdefault.jpg",
		VideoURL:     "https://www.youtube.com/watch?v=yxTR5UoSf-M",
		YouTubeID:    "yxTR5UoSf-M",
		Duration:     "5:23",
		Platform:     "YouTube",
		Channel:      "Govardhan Math, Puri",
		UploadDate:   "22 Oct 2023",
		Views:        "18K views",
		Likes:        950,
		Subscribers:  "320K",
		Category:     "Philosophy",
		Tags:         []string{"Govardhan Math", "Hinduism", "Philosophy"},
	})
	s.AddVideo(&model.Video{
		Title:        "भगवान की प्राप्ति का सहज उपाय क्या है? Puri Shankaracharya Ji",
		Description:  "Puri Shankaracharya Ji explains the easiest approach to reach God through Hindu philosophy and practice.",
		ThumbnailURL: "https://img.youtube.com/vi/XYZ123456/maxresdefault.jpg",
		VideoURL:     "https://www.youtube.com/watch?v=XYZ123456",
		YouTubeID:    "XYZ123456",
		Duration:     "6:11",
		Platform:     "YouTube",
		Channel:      "Govardhan Math, Puri",
		UploadDate:   "7 Oct 2023",
		Views:        "15K views",
		Likes:        850,
		Subscribers:  "320K",
		Category:     "Spirituality",
		Tags:         []string{"Shankaracharya", "Puri", "Spirituality", "Hindu philosophy"},
	})
	s.AddVideo(&model.Video{
		Title:        "Nischalananda Saraswati Ji Maharaj, Shankaracharya Of Puri",
		Description:  "Detailed talk by the Shankaracharya of Puri on Hindu traditions and spiritual practices.",
		ThumbnailURL: "https://img.youtube.com/vi/ABC567890/maxresdefault.jpg",
		VideoURL:     "https://www.youtube.com/watch?v=ABC567890",
		YouTubeID:    "ABC567890",
		Duration:     "4:07",
		Platform:     "YouTube",
		Channel:      "Govardhan Math, Puri",
		UploadDate:   "11 Jan 2024",
		Views:        "12K views",
		Likes:        720,
		Subscribers:  "250K",
		Category:     "News",
		Tags:         []string{"Shankaracharya", "Puri", "Hindu traditions"},
	})
	s.AddVideo(&model.Video{
		Title:        "Exclusive: Pujya Puri Shankaracharya Ji On Original Varna System",
		Description:  "Puri Shankaracharya Ji discusses the original Varna system in Hindu philosophy and its misinterpretations.",
		ThumbnailURL: "https://img.youtube.com/vi/DEF789012/maxresdefault.jpg",
		VideoURL:     "https://www.youtube.com/watch?v=DEF789012",
		YouTubeID:    "DEF789012",
		Duration:     "22:47",
		Platform:     "YouTube",
		Channel:      "Govardhan Math, Puri",
		UploadDate:   "3 Jan 2024",
		Views:        "35K views",
		Likes:        1750,
		Subscribers:  "1.5M",
		Category:     "Interview",
		Tags:         []string{"Shankaracharya", "Puri", "Varna system", "Hindu philosophy"},
	})
	s.AddVideo(&model.Video{
		Title:        "क्षय और पराजय पर ऐसे होगा निर्णय॥ Puri Shankaracharya",
		Description:  "Puri Shankaracharya discusses the philosophical concepts of decay and defeat, and how to overcome challenges.",
		ThumbnailURL: "https://img.youtube.com/vi/dZjDHjGkUqU/maxresdefault.jpg",
		VideoURL:     "https://www.youtube.com/watch?v=dZjDHjGkUqU",
		YouTubeID:    "dZjDHjGkUqU",
		Duration:     "4:53",
		Platform:     "YouTube",
		Channel:      "Govardhan Math, Puri",
		UploadDate:   "6 May 2023",
		Views:        "22K views",
		Likes:        1100,
		Subscribers:  "320K",
		Category:     "Philosophy",
		Tags:         []string{"Philosophy", "Spirituality", "Hindu Philosophy"},
	})
	s.AddVideo(&model.Video{
		Title:        "भगवान की प्राप्ति का सहज उपाय क्या है? Puri Shankaracharya Ji",
		Description:  "Puri Shankaracharya Ji explains the simple ways to attain spiritual connection with the divine.",
		ThumbnailURL: "https://img.youtube.com/vi/pfZvUih_JW8/maxresdefault.jpg",
		VideoURL:     "https://www.youtube.com/watch?v=pfZvUih_JW8",
		YouTubeID:    "pfZvUih_JW8",
		Duration:     "6:11",
		Platform:     "YouTube",
		Channel:      "Govardhan Math, Puri",
		UploadDate:   "7 Oct 2023",
		Views:        "32K views",
		Likes:        1840,
		Subscribers:  "320K",
		Category:     "Spirituality",
		Tags:         []string{"Spirituality", "Divine Connection", "Hinduism"},
	})
	s.AddVideo(&model.Video{
		Title:        "Nischalananda Saraswati Ji Maharaj, Shankaracharya Of Puri",
		Description:  "A documentary on the life and teachings of Nischalananda Saraswati Ji Maharaj, the Shankaracharya of Puri.",
		ThumbnailURL: "https://img.youtube.com/vi/Tk_NS3MYe_c/maxresdefault.jpg",
		VideoURL:     "https://www.youtube.com/watch?v=Tk_NS3MYe_c",
		YouTubeID:    "Tk_NS3MYe_c",
		Duration:     "4:07",
		Platform:     "YouTube",
		Channel:      "Govardhan Math, Puri",
		UploadDate:   "11 Jan 2024",
		Views:        "15K views",
		Likes:        730,
		Subscribers:  "280K",
		Category:     "Documentary",
		Tags:         []string{"Documentary", "Biography", "Shankaracharya"},
	})
	s.AddVideo(&model.Video{
		Title:        "Exclusive: Pujya Puri Shankaracharya Ji On Origin Of Vedic System",
		Description:  "Pujya Puri Shankaracharya Ji discusses the origins and development of the Vedic system in this exclusive interview.",
		ThumbnailURL: "https://img.youtube.com/vi/h5C_pCY1Xas/maxresdefault.jpg",
		VideoURL:     "https://www.youtube.com/watch?v=h5C_pCY1Xas",
		YouTubeID:    "h5C_pCY1Xas",
		Duration:     "22:47",
		Platform:     "YouTube",
		Channel:      "Govardhan Math, Puri",
		UploadDate:   "3 Jan 2024",
		Views:        "45K views",
		Likes:        2160,
		Subscribers:  "1.2M",
		Category:     "Interview",
		Tags:         []string{"Vedic System", "Interview", "Hinduism"},
	})
	s.AddVideo(&model.Video{
		Title:        "क्षय और पराजय पर ऐसे होगा निर्णय॥ Puri Shankaracharya",
		Description:  "Puri Shankaracharya discusses the philosophical concepts of decay and defeat, and how to overcome challenges.",
		ThumbnailURL: "https://img.youtube.com/vi/dZjDHjGkUqU/maxresdefault.jpg",
		VideoURL:     "https://www.youtube.com/watch?v=dZjDHjGkUqU",
		YouTubeID:    "dZjDHjGkUqU",
		Duration:     "4:53",
		Platform:     "YouTube",
		Channel:      "Govardhan Math, Puri",
		UploadDate:   "6 May 2023",
		Views:        "22K views",
		Likes:        1100,
		Subscribers:  "320K",
		Category:     "Philosophy",
		Tags:         []string{"Philosophy", "Spirituality", "Hindu Philosophy"},
	})
}

func seedBooks(s *ContentStore) {
	s.AddBook(&model.Book{
		Title:       "Self-Knowledge: The Absolute Oneness of Ultimate Reality",
		Author:      "Roy Eugene Davis",
		Description: "Besides expounding his non-dualistic views as presented in Self-Knowledge (Sanskrit Atma Bodha), he also wrote poems and composed hymns.",
		CoverURL:    "https://m.media-amazon.com/images/I/51GW0WzeTeL._SY445_SX342_.jpg",
		PublishYear: "2012",
		Publisher:   "CSA Press",
		Action:      "Preview",
		Language:    "English",
		Pages:       184,
		ISBN:        "978-0877072782",
		Format:      "Paperback",
		FileURL:     "/books/self-knowledge.pdf",
		Category:    "Philosophy",
		TableOfContents: []*model.TOCEntry{
			{Title: "Introduction to Non-dualism", Page: 1},
			{Title: "The Nature of Consciousness", Page: 25},
			{Title: "Practical Applications", Page: 78},
		},
		AuthorDetails: &model.AuthorDetails{
			Bio: "Roy Eugene Davis was a direct disciple of Paramahansa Yogananda and taught meditation and spiritual growth practices for more than 60 years.",
		},
		Reviews: []*model.Review{
			{
				Author:  "Spiritual Seeker",
				Date:    "March 15, 2022",
				Rating:  5,
				Content: "This book provides clear insights into Advaita philosophy in an accessible way.",
			},
		},
	})
	s.AddBook(&model.Book{
		Title:       "Adi Shankaracharya: Hinduism's Greatest Thinker",
		Author:      "Pavan K. Varma",
		Description: "A must-read for people across the ideological spectrum, this book reminds readers about the remarkable philosophical underpinning of Hinduism.",
		CoverURL:    "https://m.media-amazon.com/images/I/41jngBxgQ+L._SY445_SX342_.jpg",
		PublishYear: "2020",
		Publisher:   "Tranquebar",
		Action:      "More editions",
		Language:    "English",
		Pages:       364,
		ISBN:        "978-9388689618",
		Format:      "Hardcover",
		FileURL:     "/books/adi-shankaracharya.pdf",
		Category:    "Biography",
		TableOfContents: []*model.TOCEntry{
			{Title: "Early Life", Page: 1},
			{Title: "Philosophical Contributions", Page: 42},
			{Title: "Legacy", Page: 210},
		},
		AuthorDetails: &model.AuthorDetails{
			Bio: "Pavan K. Varma is a writer-diplomat and now a politician, who has been a member of the Rajya Sabha, the upper house of the Indian parliament.",
		},
		Reviews: []*model.Review{
			{
				Author:  "History Buff",
				Date:    "January 8, 2021",
				Rating:  4,
				Content: "Well-researched biography that places Shankaracharya in the proper historical and cultural context.",
			},
		},
	})
	s.AddBook(&model.Book{
		Title:       "Shankaracharya - Page 30",
		Author:      "Prem Lata",
		Description: "... Puri, where he stayed for some time. Here he composed the famous Jagannathashtak Stotra, and established the Purva Amnaya-pitha math for...",
		CoverURL:    "https://m.media-amazon.com/images/I/41N9sr0YViL._SY445_SX342_.jpg",
		PublishYear: "1982",
		Publisher:   "Sumit Publications",
		Action:      "Snippet view",
		Language:    "English",
		Pages:       152,
		ISBN:        "978-0866350004",
		Format:      "Paperback",
		FileURL:     "/books/shankaracharya-excerpt.pdf",
		Category:    "Biography",
	})
	s.AddBook(&model.Book{
		Title:       "Advaita Vedanta: A Philosophical Reconstruction",
		Author:      "Eliot Deutsch",
		Description: "A clear, comprehensive presentation of Advaita Vedanta, the philosophical system expounded by Shankara, that influenced all schools of Indian philosophy.",
		CoverURL:    "https://m.media-amazon.com/images/I/51YzaYdl7tL._SY445_SX342_.jpg",
		PublishYear: "1973",
		Publisher:   "University of Hawaii Press",
		Action:      "Preview",
		Language:    "English",
		Pages:       132,
		ISBN:        "978-0824802714",
		Format:      "Paperback",
		FileURL:     "/books/advaita-vedanta.pdf",
		Category:    "Philosophy",
		TableOfContents: []*model.TOCEntry{
			{Title: "The Metaphysical Background", Page: 1},
			{Title: "The Logic of Non-dualism", Page: 35},
			{Title: "Consciousness and Self", Page: 73},
		},
		AuthorDetails: &model.AuthorDetails{
			Bio: "Eliot Deutsch was a philosopher, professor, and writer who specialized in comparative philosophy, Asian philosophy, and Advaita Vedanta.",
		},
		Reviews: []*model.Review{
			{
				Author:  "Philosophy Student",
				Date:    "August 22, 2020",
				Rating:  5,
				Content: "Essential reading for anyone interested in Advaita philosophy.",
			},
		},
	})
	s.AddBook(&model.Book{
		Title:       "The Jagannath Temple at Puri: Architecture, Art and Ritual",
		Author:      "O.M. Starza",
		Description: "This book documents the significance of this famous Hindu temple and the role of Shankaracharya in establishing the worship patterns.",
		CoverURL:    "https://m.media-amazon.com/images/I/41-8wsiGfCL._SY445_SX342_.jpg",
		PublishYear: "1993",
		Publisher:   "Brill Academic",
		Action:      "Full view",
		Language:    "English",
		Pages:       256,
		ISBN:        "978-9004095090",
		Format:      "Hardcover",
		FileURL:     "/books/jagannath-temple.pdf",
		Category:    "Architecture",
		TableOfContents: []*model.TOCEntry{
			{Title: "Historical Background", Page: 1},
			{Title: "Temple Architecture", Page: 48},
			{Title: "Rituals and Festivals", Page: 152},
		},
		Reviews: []*model.Review{
			{
				Author:  "Art Historian",
				Date:    "May 5, 2019",
				Rating:  4,
				Content: "Detailed examination of one of India's most important temples.",
			},
		},
	})
	s.AddBook(&model.Book{
		Title:       "SHANKARACHARYA: His Life and Times",
		Author:      "T.M.P. Mahadevan",
		Description: "A comprehensive biography of the great Advaita philosopher that explores his travels throughout India and establishment of the four monastic orders.",
		CoverURL:    "https://m.media-amazon.com/images/I/41e2oz0c-fL._SY445_SX342_.jpg",
		PublishYear: "1968",
		Publisher:   "Bharatiya Vidya Bhavan",
		Action:      "Snippet view",
		Language:    "English",
		Pages:       186,
		ISBN:        "978-0896840188",
		Format:      "Hardcover",
		FileURL:     "/books/shankaracharya-life.pdf",
		Category:    "Biography",
		TableOfContents: []*model.TOCEntry{
			{Title: "Birth and Early Years", Page: 1},
			{Title: "The Mission Begins", Page: 38},
			{Title: "The Four Monasteries", Page: 94},
		},
		AuthorDetails: &model.AuthorDetails{
			Bio: "T.M.P. Mahadevan was a well-known Indian philosopher and professor of philosophy who specialized in Advaita Vedanta.",
		},
	})
}

func seedFeaturedContent() *model.FeaturedContent {
	return &model.FeaturedContent{
		Featured: &model.FeaturedLecture{
			ID:        "feat1",
			Title:     "The Essence of Advaita Philosophy: Teachings by Puri Shankaracharya",
			Thumbnail: "https://img.youtube.com/vi/V1At9WZcIOk/maxresdefault.jpg",
			Duration:  "1:23:45",
			Date:      "25 Dec 2023",
		},
		RelatedLectures: []*model.RelatedLecture{
			{
				ID:        "rel1",
				Title:     "Understanding Maya: The Cosmic Illusion",
				Thumbnail: "https://img.youtube.com/vi/q7NrdKr9egg/maxresdefault.jpg",
				Duration:  "12:34",
				Channel:   "Govardhan Math, Puri",
				Views:     "15K",
			},
			{
				ID:        "rel2",
				Title:     "The Four Paths of Yoga Explained",
				Thumbnail: "https://img.youtube.com/vi/g_3TuFe4PtI/maxresdefault.jpg",
				Duration:  "18:22",
				Channel:   "Govardhan Math, Puri",
				Views:     "8.2K",
			},
			{
				ID:        "rel3",
				Title:     "Bhagavad Gita: Key Teachings for Modern Life",
				Thumbnail: "https://img.youtube.com/vi/hJCL_Q0tPYo/maxresdefault.jpg",
				Duration:  "27:15",
				Channel:   "Govardhan Math, Puri",
				Views:     "22K",
			},
		},
	}
}

func seedStudyMaterials() []*model.StudyMaterial {
	return []*model.StudyMaterial{
		{
			ID:          "sm1",
			Title:       "Sanskrit Texts",
			Icon:        "text",
			Description: "Original Sanskrit texts with translations and commentaries by Shankaracharya.",
			Files: []*model.StudyFile{
				{Name: "Vivekachudamani", Format: "PDF"},
				{Name: "Bhaja Govindam", Format: "PDF"},
				{Name: "Atma Bodha", Format: "PDF"},
			},
			ButtonText:  "Download All Texts",
			ButtonColor: "primary",
		},
		{
			ID:          "sm2",
			Title:       "Audio Lectures",
			Icon:        "audio",
			Description: "Listen to discourses on Advaita philosophy and Vedanta teachings.",
			Files: []*model.StudyFile{
				{Name: "Introduction to Advaita", Format: "MP3"},
				{Name: "Brahma Sutras Explained", Format: "MP3"},
				{Name: "Understanding Karma", Format: "MP3"},
			},
			ButtonText:  "Browse Audio Collection",
			ButtonColor: "secondary",
		},
		{
			ID:          "sm3",
			Title:       "Study Guides",
			Icon:        "study",
			Description: "Structured learning materials for deeper understanding of Hindu philosophy.",
			Files: []*model.StudyFile{
				{Name: "Beginners Guide to Vedanta", Format: "Document"},
				{Name: "Understanding the Four Vedas", Format: "Document"},
				{Name: "Meditation Techniques", Format: "Document"},
			},
			ButtonText:  "Access Study Materials",
			ButtonColor: "accent",
		},
	}
}
