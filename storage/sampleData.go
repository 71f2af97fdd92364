package storage

import (
	"context"
	"time"

	"github.com/CongregationConsole/models"
	"golang.org/x/crypto/bcrypt"
)

// SamplePassword is the login password of every seeded user.
const SamplePassword = "password123"

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func (s *MemStore) seed() {
	s.seedInMemoryOnly()
	s.seedPrograms()
	s.seedPrayerRequests()
}

// seedInMemoryOnly loads the families that never have a database backing.
func (s *MemStore) seedInMemoryOnly() {
	now := s.now()
	s.seedDashboard(now)
	s.seedJobBoard()
	s.seedForum(now)
}

func (s *MemStore) seedDashboard(now time.Time) {
	hash, err := bcrypt.GenerateFromPassword([]byte(SamplePassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	password := string(hash)

	users := []models.User{
		{Username: "juan.perez", Password: password, Email: strPtr("juan.perez@ejemplo.com"), Role: strPtr("admin")},
		{Username: "maria.gonzalez", Password: password, Email: strPtr("maria.gonzalez@ejemplo.com"), Role: strPtr("user")},
	}
	for _, u := range users {
		s.users.insert(func(id int) models.User {
			u.User_ID = id
			u.Datetime_Create = now
			return u
		})
	}

	products := []models.Product{
		{
			SKU:         "PRD-001",
			Name:        "Auriculares Inalámbricos Pro",
			Description: strPtr("Auriculares inalámbricos de alta calidad con cancelación de ruido"),
			Price:       "$159.99",
			Category:    "Electrónica",
			Image_URL:   strPtr("https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&w=80&h=80"),
			Sales:       324,
		},
		{
			SKU:         "PRD-002",
			Name:        "Altavoz Bluetooth Portátil",
			Description: strPtr("Altavoz portátil con 20 horas de batería y resistente al agua"),
			Price:       "$89.99",
			Category:    "Electrónica",
			Image_URL:   strPtr("https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=80&h=80"),
			Sales:       256,
		},
		{
			SKU:         "PRD-003",
			Name:        "Zapatillas Deportivas Run+",
			Description: strPtr("Zapatillas para correr de alto rendimiento con amortiguación extra"),
			Price:       "$129.99",
			Category:    "Ropa",
			Image_URL:   strPtr("https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&w=80&h=80"),
			Sales:       198,
		},
	}
	for _, p := range products {
		s.products.insert(func(id int) models.Product {
			p.Product_ID = id
			p.Datetime_Create = now
			return p
		})
	}

	orders := []models.Order{
		{
			Order_Number: "ORD-0102", User_ID: 2, Status: "Entregado", Total: "$124.00", Date: "24 May, 2023",
			Customer:        models.OrderCustomer{Name: "María González", Avatar_URL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=60&h=60"},
			Datetime_Create: now,
		},
		{
			Order_Number: "ORD-0101", User_ID: 3, Status: "En proceso", Total: "$89.50", Date: "24 May, 2023",
			Customer:        models.OrderCustomer{Name: "Carlos Rodríguez", Avatar_URL: "https://images.unsplash.com/photo-1599566150163-29194dcaad36?auto=format&fit=crop&w=60&h=60"},
			Datetime_Create: now.Add(-time.Hour),
		},
		{
			Order_Number: "ORD-0100", User_ID: 4, Status: "Cancelado", Total: "$215.75", Date: "23 May, 2023",
			Customer:        models.OrderCustomer{Name: "Ana Martínez", Avatar_URL: "https://images.unsplash.com/photo-1580489944761-15a19d654956?auto=format&fit=crop&w=60&h=60"},
			Datetime_Create: now.Add(-24 * time.Hour),
		},
		{
			Order_Number: "ORD-0099", User_ID: 5, Status: "Entregado", Total: "$67.25", Date: "23 May, 2023",
			Customer:        models.OrderCustomer{Name: "Luis Hernández", Avatar_URL: "https://images.unsplash.com/photo-1552058544-f2b08422138a?auto=format&fit=crop&w=60&h=60"},
			Datetime_Create: now.Add(-48 * time.Hour),
		},
	}
	for _, o := range orders {
		s.orders.insert(func(id int) models.Order {
			o.Order_ID = id
			return o
		})
	}

	activities := []models.Activity{
		{Type: "user", Message: `Nuevo usuario registrado <span class="font-medium">Laura Sánchez</span>`, Time_Ago: "Hace 5 minutos", Datetime_Create: now},
		{Type: "order", Message: `Nuevo pedido <span class="font-medium">#ORD-0102</span> completado`, Time_Ago: "Hace 27 minutos", Datetime_Create: now.Add(-27 * time.Minute)},
		{Type: "refund", Message: `Solicitud de reembolso para el pedido <span class="font-medium">#ORD-0097</span>`, Time_Ago: "Hace 1 hora", Datetime_Create: now.Add(-time.Hour)},
		{Type: "message", Message: `Nuevo mensaje de <span class="font-medium">Carlos Rodríguez</span>`, Time_Ago: "Hace 3 horas", Datetime_Create: now.Add(-3 * time.Hour)},
	}
	for _, a := range activities {
		s.activities.insert(func(id int) models.Activity {
			a.Activity_ID = id
			return a
		})
	}
}

func august2024(day int) time.Time {
	return time.Date(2024, time.August, day, 0, 0, 0, 0, time.UTC)
}

func (s *MemStore) seedJobBoard() {
	now := s.now()
	areas := []models.ProfessionalArea{
		{Name: "Tecnología", Description: strPtr("Desarrollo de software, IT, sistemas")},
		{Name: "Marketing", Description: strPtr("Marketing digital, publicidad, ventas")},
		{Name: "Finanzas", Description: strPtr("Contabilidad, análisis financiero, banca")},
		{Name: "Recursos Humanos", Description: strPtr("Gestión de talento, reclutamiento")},
		{Name: "Diseño", Description: strPtr("Diseño gráfico, UX/UI, creatividad")},
	}
	for _, a := range areas {
		s.areas.insert(func(id int) models.ProfessionalArea {
			a.Professional_Area_ID = id
			a.Datetime_Create = now
			return a
		})
	}

	jobs := []models.Job{
		{
			Title:                "Desarrollador Frontend React",
			Company:              "TechCorp",
			Description:          "Buscamos un desarrollador frontend con experiencia en React y TypeScript para unirse a nuestro equipo de desarrollo de productos.",
			Requirements:         []string{"React", "TypeScript", "CSS", "Git"},
			Benefits:             []string{"Trabajo remoto", "Seguro médico", "Capacitaciones"},
			Professional_Area_ID: intPtr(1),
			Location:             strPtr("Santo Domingo, RD"),
			Job_Type:             "full-time",
			Experience_Level:     "mid",
			Salary_Range:         strPtr("$35,000 - $45,000"),
			Contact_Email:        "reclutamiento@techcorp.com",
			Contact_Phone:        strPtr("809-555-0123"),
			Datetime_Create:      august2024(15),
		},
		{
			Title:                "Especialista en Marketing Digital",
			Company:              "MarketPro",
			Description:          "Buscamos un especialista en marketing digital para gestionar nuestras campañas en redes sociales y SEO.",
			Requirements:         []string{"Google Ads", "Facebook Ads", "SEO", "Analytics"},
			Benefits:             []string{"Horario flexible", "Bonos por rendimiento"},
			Professional_Area_ID: intPtr(2),
			Location:             strPtr("Santiago, RD"),
			Job_Type:             "full-time",
			Experience_Level:     "entry",
			Salary_Range:         strPtr("$25,000 - $32,000"),
			Contact_Email:        "jobs@marketpro.com",
			Datetime_Create:      august2024(20),
		},
		{
			Title:                "Diseñador UX/UI",
			Company:              "DesignStudio",
			Description:          "Únete a nuestro equipo creativo como diseñador UX/UI para crear experiencias digitales excepcionales.",
			Requirements:         []string{"Figma", "Adobe XD", "Prototipado", "User Research"},
			Benefits:             []string{"Ambiente creativo", "Proyectos internacionales", "Crecimiento profesional"},
			Professional_Area_ID: intPtr(5),
			Location:             strPtr("Santo Domingo, RD"),
			Job_Type:             "full-time",
			Experience_Level:     "senior",
			Salary_Range:         strPtr("$40,000 - $55,000"),
			Contact_Email:        "careers@designstudio.com",
			Contact_Phone:        strPtr("809-555-0456"),
			Datetime_Create:      august2024(25),
		},
	}
	for _, j := range jobs {
		s.jobs.insert(func(id int) models.Job {
			j.Job_ID = id
			j.Is_Active = true
			j.Published_By = 1
			j.Datetime_Update = j.Datetime_Create
			return j
		})
	}

	profiles := []models.UserProfile{
		{
			User_ID:              2,
			Full_Name:            "María González",
			Email:                "maria.gonzalez@ejemplo.com",
			Phone:                strPtr("809-555-1234"),
			Professional_Area_ID: intPtr(1),
			Experience:           strPtr("3 años de experiencia en desarrollo frontend con React y Vue.js."),
			Skills:               []string{"React", "Vue.js", "JavaScript", "TypeScript", "HTML", "CSS", "Git"},
			Education:            strPtr("Ingeniería en Sistemas, PUCMM"),
			Summary:              strPtr("Desarrolladora frontend apasionada por crear interfaces de usuario intuitivas y responsivas."),
			Expected_Salary:      strPtr("$30,000 - $40,000"),
			Datetime_Create:      august2024(10),
		},
		{
			User_ID:              1,
			Full_Name:            "Juan Pérez",
			Email:                "juan.perez@ejemplo.com",
			Phone:                strPtr("809-555-5678"),
			Professional_Area_ID: intPtr(2),
			Experience:           strPtr("5 años en marketing digital, especializado en Google Ads y Facebook Ads."),
			Skills:               []string{"Google Ads", "Facebook Ads", "SEO", "Analytics", "Marketing Automation"},
			Education:            strPtr("Licenciatura en Marketing, UASD"),
			Summary:              strPtr("Especialista en marketing digital con experiencia en generación de leads y optimización de ROI."),
			Expected_Salary:      strPtr("$35,000 - $45,000"),
			Datetime_Create:      august2024(12),
		},
	}
	for _, p := range profiles {
		s.profiles.insert(func(id int) models.UserProfile {
			p.User_Profile_ID = id
			p.Available_For_Work = true
			p.Datetime_Update = p.Datetime_Create
			return p
		})
	}

	reviewedAt29, reviewedAt30 := august2024(29), august2024(30)
	applications := []models.JobApplication{
		{
			Job_ID:          intPtr(1),
			User_Profile_ID: 1,
			Cover_Letter:    "Estimado equipo de reclutamiento, estoy muy interesada en la posición de Desarrollador Frontend React.",
			Status:          models.ApplicationStatusPending,
			Applied_At:      august2024(28),
			Datetime_Update: august2024(28),
		},
		{
			Job_ID:          intPtr(2),
			User_Profile_ID: 2,
			Cover_Letter:    "Hola equipo de MarketPro, me postulo para la posición de Especialista en Marketing Digital.",
			Status:          models.ApplicationStatusReviewed,
			Reviewed_By:     intPtr(1),
			Reviewed_At:     &reviewedAt29,
			Notes:           strPtr("Candidato prometedor con buena experiencia. Programar entrevista."),
			Applied_At:      august2024(26),
			Datetime_Update: august2024(29),
		},
		{
			Job_ID:          intPtr(3),
			User_Profile_ID: 1,
			Cover_Letter:    "Aunque mi experiencia principal es en desarrollo frontend, tengo un gran interés en UX/UI.",
			Status:          models.ApplicationStatusRejected,
			Reviewed_By:     intPtr(1),
			Reviewed_At:     &reviewedAt30,
			Notes:           strPtr("Perfil interesante pero buscamos alguien con más experiencia específica en UX/UI."),
			Applied_At:      august2024(27),
			Datetime_Update: august2024(30),
		},
		{
			User_Profile_ID: 2,
			Cover_Letter:    "Hola, soy Juan Pérez, especialista en marketing digital. Estoy abierto a nuevas oportunidades.",
			Status:          models.ApplicationStatusPending,
			Applied_At:      august2024(30),
			Datetime_Update: august2024(30),
		},
	}
	for _, a := range applications {
		s.applications.insert(func(id int) models.JobApplication {
			a.Job_Application_ID = id
			a.Datetime_Create = a.Applied_At
			return a
		})
	}
}

func (s *MemStore) seedForum(now time.Time) {
	categories := []models.ForumCategory{
		{
			Name: "Comunión Diaria", Description: strPtr("Reflexiones y comunión diaria con Dios"),
			Icon: "BookOpen", Color: "blue", Slug: "comunion-diaria", Position: 1,
			Schedule: strPtr("Lunes a Viernes, 7:00 AM"), Max_Participants: intPtr(100),
		},
		{
			Name: "Cursos Bíblicos", Description: strPtr("Aprende más sobre la Palabra de Dios"),
			Icon: "GraduationCap", Color: "green", Slug: "cursos-biblicos", Position: 2,
		},
		{
			Name: "Eventos", Description: strPtr("Próximos eventos y actividades de la iglesia"),
			Icon: "Calendar", Color: "purple", Slug: "eventos", Position: 3,
		},
	}
	for _, c := range categories {
		s.categories.insert(func(id int) models.ForumCategory {
			c.Forum_Category_ID = id
			c.Is_Active = true
			c.Datetime_Create = now
			return c
		})
	}

	at := func(d time.Duration) *time.Time {
		t := now.Add(-d)
		return &t
	}
	threads := []models.Thread{
		{
			Forum_Category_ID: 1, Author_ID: "1",
			Title:     "Reflexión del día - La fe que mueve montañas",
			Content:   "Hoy quiero compartir una reflexión sobre Mateo 17:20...",
			Is_Sticky: true, View_Count: 145, Reply_Count: 23,
			Last_Reply_At: at(30 * time.Minute), Last_Reply_By: strPtr("2"),
			Datetime_Create: now.Add(-24 * time.Hour), Datetime_Update: now.Add(-30 * time.Minute),
		},
		{
			Forum_Category_ID: 2, Author_ID: "1",
			Title:      "Nuevo curso: Introducción al Antiguo Testamento",
			Content:    "Estamos iniciando un nuevo curso sobre el Antiguo Testamento...",
			View_Count: 89, Reply_Count: 12,
			Last_Reply_At: at(2 * time.Hour), Last_Reply_By: strPtr("2"),
			Datetime_Create: now.Add(-48 * time.Hour), Datetime_Update: now.Add(-2 * time.Hour),
		},
		{
			Forum_Category_ID: 3, Author_ID: "2",
			Title:     "Retiro Espiritual - Próximo fin de semana",
			Content:   "¡Únete a nuestro retiro espiritual! Será un tiempo de renovación...",
			Is_Sticky: true, View_Count: 234, Reply_Count: 45,
			Last_Reply_At: at(15 * time.Minute), Last_Reply_By: strPtr("1"),
			Datetime_Create: now.Add(-72 * time.Hour), Datetime_Update: now.Add(-15 * time.Minute),
		},
	}
	for _, t := range threads {
		s.threads.insert(func(id int) models.Thread {
			t.Thread_ID = id
			return t
		})
	}

	posts := []models.Post{
		{Thread_ID: 1, Author_ID: "2", Content: "¡Excelente reflexión! Me encanta cómo explicas el poder de la fe.", Datetime_Create: now.Add(-30 * time.Minute)},
		{Thread_ID: 1, Author_ID: "1", Content: "Gracias por tus palabras. La fe es fundamental en nuestra vida cristiana.", Parent_ID: intPtr(1), Datetime_Create: now.Add(-25 * time.Minute)},
		{Thread_ID: 2, Author_ID: "2", Content: "¿Cuándo inicia el curso y cuál es el horario?", Datetime_Create: now.Add(-2 * time.Hour)},
	}
	for _, p := range posts {
		s.posts.insert(func(id int) models.Post {
			p.Post_ID = id
			p.Datetime_Update = p.Datetime_Create
			return p
		})
	}
}

func (s *MemStore) seedPrograms() {
	ctx := context.Background()
	program, _ := s.CreateProgram(ctx, models.ProgramCreate{
		Slug:        "21-dias-de-ayuno",
		Name:        "21 Días de Ayuno y Oración",
		Description: strPtr("Un recorrido diario de búsqueda de Dios a través del ayuno y la oración."),
		Duration:    strPtr("21 días"),
		Published:   boolPtr(true),
	})
	days := []models.ProgramDayCreate{
		{
			Day_Number:          1,
			Title:               "Un corazón dispuesto",
			Scripture_Ref:       strPtr("Joel 2:12"),
			Scripture_Text:      strPtr("Convertíos a mí con todo vuestro corazón, con ayuno y lloro y lamento."),
			Fasting_Description: strPtr("Ayuno de desayuno"),
			Readings:            []string{"Joel 2", "Salmo 51"},
		},
		{
			Day_Number:          2,
			Title:               "Buscad primero el reino",
			Scripture_Ref:       strPtr("Mateo 6:33"),
			Scripture_Text:      strPtr("Mas buscad primeramente el reino de Dios y su justicia."),
			Fasting_Description: strPtr("Ayuno de desayuno"),
			Readings:            []string{"Mateo 6", "Salmo 27"},
		},
	}
	for _, d := range days {
		d.Program_ID = program.Program_ID
		s.CreateProgramDay(ctx, d)
	}
}

func (s *MemStore) seedPrayerRequests() {
	ctx := context.Background()
	requests := []models.PrayerRequestCreate{
		{Request: "Por la salud de mi madre, que está en recuperación.", Author: "María González", Category: strPtr("salud")},
		{Request: "Por dirección para el nuevo año de ministerio.", Author: "Juan Pérez"},
	}
	for _, r := range requests {
		s.CreatePrayerRequest(ctx, r)
	}
}

func boolPtr(b bool) *bool { return &b }
