package database

import (
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/models"
	"portfolio/internal/storage"
)

// Seed populates an empty store with starter portfolio content and a
// default admin account, so a fresh instance renders a complete site.
// It is a no-op when data already exists. Works against any storage
// backend, which is why it takes the interface rather than *sql.DB.
func Seed(st storage.Store) error {
	profile, err := st.GetProfile()
	if err != nil {
		return fmt.Errorf("seed check profile: %w", err)
	}
	if profile != nil {
		slog.Info("store already seeded, skipping")
		return nil
	}

	if err := seedAdmin(st); err != nil {
		return err
	}

	if _, err := st.UpdateProfile(&seedProfile); err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}
	for i := range seedBooks {
		if _, err := st.CreateBook(&seedBooks[i]); err != nil {
			return fmt.Errorf("seed book: %w", err)
		}
	}
	for i := range seedEvents {
		if _, err := st.CreateEvent(&seedEvents[i]); err != nil {
			return fmt.Errorf("seed event: %w", err)
		}
	}
	for i := range seedBlogs {
		if _, err := st.CreateBlog(&seedBlogs[i]); err != nil {
			return fmt.Errorf("seed blog: %w", err)
		}
	}
	for i := range seedProjects {
		if _, err := st.CreateProject(&seedProjects[i]); err != nil {
			return fmt.Errorf("seed project: %w", err)
		}
	}

	slog.Info("store seeded with starter content",
		"books", len(seedBooks),
		"events", len(seedEvents),
		"blogs", len(seedBlogs),
		"projects", len(seedProjects),
	)
	return nil
}

// seedAdmin creates the default admin login if no admin exists yet.
func seedAdmin(st storage.Store) error {
	existing, err := st.GetUserByUsername("admin")
	if err != nil {
		return fmt.Errorf("seed check admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}
	if _, err := st.CreateUser("admin", string(hash)); err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("seeded default admin user", "username", "admin", "password", "admin")
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

var seedProfile = models.ProfileInput{
	Name:         "John Doe",
	Title:        "Software Engineer & Tech Writer",
	Bio:          "Welcome to my personal portfolio showcasing my journey through books, events, blogs, and coding projects.",
	Avatar:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=774&q=80",
	Email:        "hello@johndoe.com",
	Location:     "San Francisco, California",
	WorkingHours: strPtr("Monday - Friday: 9AM - 5PM PST"),
	SocialLinks: models.SocialLinks{
		Twitter:  "https://twitter.com/johndoe",
		GitHub:   "https://github.com/johndoe",
		LinkedIn: "https://linkedin.com/in/johndoe",
		Medium:   "https://medium.com/@johndoe",
	},
}

var seedBooks = []models.BookInput{
	{
		Title:         "Atomic Habits",
		Author:        "James Clear",
		Description:   "An insightful guide to building good habits and breaking bad ones through small, incremental changes.",
		CoverImage:    "https://images.unsplash.com/photo-1544947950-fa07a98d237f?auto=format&fit=crop&w=774&q=80",
		SummaryLink:   strPtr("/books/atomic-habits"),
		PublishedYear: intPtr(2018),
		Tags:          []string{"Productivity", "Self-Improvement", "Psychology"},
	},
	{
		Title:         "Thinking, Fast and Slow",
		Author:        "Daniel Kahneman",
		Description:   "A groundbreaking exploration of the two systems that drive the way we think and make decisions.",
		CoverImage:    "https://images.unsplash.com/photo-1589829085413-56de8ae18c73?auto=format&fit=crop&w=774&q=80",
		SummaryLink:   strPtr("/books/thinking-fast-and-slow"),
		PublishedYear: intPtr(2011),
		Tags:          []string{"Psychology", "Behavioral Economics", "Decision Making"},
	},
	{
		Title:         "The Lean Startup",
		Author:        "Eric Ries",
		Description:   "How constant innovation creates radically successful businesses through validated learning.",
		CoverImage:    "https://images.unsplash.com/photo-1512820790803-83ca734da794?auto=format&fit=crop&w=774&q=80",
		SummaryLink:   strPtr("/books/the-lean-startup"),
		PublishedYear: intPtr(2011),
		Tags:          []string{"Business", "Entrepreneurship", "Innovation"},
	},
}

var seedEvents = []models.EventInput{
	{
		Title:       "TechCrunch Disrupt",
		Description: "Attended as a speaker and panel moderator. Discussed the future of AI in software development and networked with industry leaders.",
		Date:        "June 2023",
		Location:    "San Francisco, CA",
		Tags:        []string{"Speaker", "AI", "Technology"},
		Link:        strPtr("https://techcrunch.com/events/disrupt-2023/"),
	},
	{
		Title:       "Web Summit",
		Description: "Presented a workshop on modern web development techniques and participated in a roundtable discussion on accessibility standards.",
		Date:        "November 2022",
		Location:    "Berlin, Germany",
		Tags:        []string{"Workshop", "Web Development", "Accessibility"},
		Link:        strPtr("https://websummit.com/"),
	},
	{
		Title:       "SXSW Interactive",
		Description: "Participated in a hackathon focused on sustainable technology solutions and networked with creative technologists from around the world.",
		Date:        "March 2022",
		Location:    "Austin, TX",
		Tags:        []string{"Hackathon", "Sustainability", "Innovation"},
		Link:        strPtr("https://www.sxsw.com/"),
	},
}

var seedBlogs = []models.BlogInput{
	{
		Title:      "Modern JavaScript Techniques Every Developer Should Know",
		Excerpt:    "An exploration of the latest JavaScript features that can improve your code quality and developer experience...",
		Content:    "Full article content goes here with detailed explanations and code examples.",
		CoverImage: "https://images.unsplash.com/photo-1555066931-4365d14bab8c?auto=format&fit=crop&w=1770&q=80",
		Category:   "Web Development",
		Date:       "August 15, 2023",
		Link:       strPtr("/blogs/modern-javascript-techniques"),
	},
	{
		Title:      "The Ethical Implications of Machine Learning Models",
		Excerpt:    "Examining how we can build more responsible AI systems and address potential biases in our algorithms...",
		Content:    "Full article content goes here with detailed explanations of ethical considerations in AI.",
		CoverImage: "https://images.unsplash.com/photo-1504868584819-f8e8b4b6d7e3?auto=format&fit=crop&w=1776&q=80",
		Category:   "AI & Ethics",
		Date:       "June 22, 2023",
		Link:       strPtr("/blogs/ethical-implications-machine-learning"),
	},
	{
		Title:      "Effective Reading Strategies for Knowledge Workers",
		Excerpt:    "How to extract maximum value from your reading time and build a personal knowledge management system...",
		Content:    "Full article content goes here with detailed strategies for effective reading and knowledge retention.",
		CoverImage: "https://images.unsplash.com/photo-1507842217343-583bb7270b66?auto=format&fit=crop&w=1770&q=80",
		Category:   "Productivity",
		Date:       "April 10, 2023",
		Link:       strPtr("/blogs/reading-strategies-knowledge-workers"),
	},
}

var seedProjects = []models.ProjectInput{
	{
		Title:       "Intelligent Task Manager",
		Description: "A productivity app that uses machine learning to prioritize tasks based on your working patterns and deadlines.",
		CoverImage:  "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&w=1770&q=80",
		Tags:        []string{"React", "Node.js", "TensorFlow.js", "MongoDB"},
		DemoLink:    strPtr("https://task-manager-demo.example.com"),
		CodeLink:    strPtr("https://github.com/johndoe/intelligent-task-manager"),
		Featured:    true,
	},
	{
		Title:       "E-commerce Analytics Dashboard",
		Description: "An interactive dashboard for e-commerce businesses to visualize sales data and customer insights.",
		CoverImage:  "https://images.unsplash.com/photo-1543286386-713bdd548da4?auto=format&fit=crop&w=1770&q=80",
		Tags:        []string{"Vue.js", "D3.js", "GraphQL", "Firebase"},
		DemoLink:    strPtr("https://ecommerce-analytics.example.com"),
		CodeLink:    strPtr("https://github.com/johndoe/ecommerce-analytics"),
	},
	{
		Title:       "Natural Language Processing API",
		Description: "A RESTful API for text analysis, sentiment detection, and language translation with high accuracy.",
		CoverImage:  "https://images.unsplash.com/photo-1518770660439-4636190af475?auto=format&fit=crop&w=1770&q=80",
		Tags:        []string{"Python", "Flask", "spaCy", "Docker"},
		DemoLink:    strPtr("https://nlp-api-docs.example.com"),
		CodeLink:    strPtr("https://github.com/johndoe/nlp-api"),
	},
	{
		Title:       "Mobile Fitness App",
		Description: "A cross-platform fitness application with workout tracking, nutrition planning, and progress analytics.",
		CoverImage:  "https://images.unsplash.com/photo-1580927752452-89d86da3fa0a?auto=format&fit=crop&w=1770&q=80",
		Tags:        []string{"React Native", "Redux", "Express", "PostgreSQL"},
		DemoLink:    strPtr("https://fitness-app.example.com"),
		CodeLink:    strPtr("https://github.com/johndoe/fitness-app"),
	},
}
