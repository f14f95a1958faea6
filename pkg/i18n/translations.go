package i18n

// translations maps language code → nested translation tree.
// English is the reference tree: every key the site uses exists under "en".
// Other languages may be partial; lookups fall back to English per key.
var translations = map[string]Tree{

	"en": {
		"nav": Tree{
			"home":      "Home",
			"services":  "Services",
			"portfolio": "Portfolio",
			"pricing":   "Pricing",
			"contact":   "Contact",
		},
		"hero": Tree{
			"titleLine":   "We build brands that move",
			"subtitle":    "Design, film and digital campaigns for companies that want to stand out",
			"cta":         "Start a project",
			"secondaryCta": "See our work",
		},
		"services": Tree{
			"title": "What we do",
			"items": []string{
				"Brand identity",
				"Audiovisual production",
				"Social media management",
				"Web design & development",
				"Paid media campaigns",
			},
		},
		"pricing": Tree{
			"title":    "Packages",
			"from":     "From {{price}}",
			"perMonth": "{{price}} / month",
			"custom":   "Need something different? Let's talk.",
		},
		"testimonials": Tree{
			"title": "What our clients say",
			"items": []string{
				"They understood our brand better than we did.",
				"The launch video doubled our reach in a month.",
				"Fast, creative and always on time.",
			},
		},
		"contact": Tree{
			"title":    "Tell us about your project",
			"name":     "Name",
			"email":    "Email",
			"company":  "Company",
			"phone":    "Phone",
			"budget":   "Budget",
			"service":  "Service",
			"message":  "Message",
			"send":     "Send message",
			"success":  "Thanks {{name}}! We received your message and will reply within 24 hours.",
			"error":    "Something went wrong sending your message. Please try again.",
			"required": "Please fill in your name, email and message.",
		},
		"footer": Tree{
			"rights": "All rights reserved.",
			"follow": "Follow us",
		},
	},

	"es": {
		"nav": Tree{
			"home":      "Inicio",
			"services":  "Servicios",
			"portfolio": "Portafolio",
			"pricing":   "Precios",
			"contact":   "Contacto",
		},
		"hero": Tree{
			"titleLine":    "Creamos marcas que se mueven",
			"subtitle":     "Diseño, video y campañas digitales para empresas que quieren destacar",
			"cta":          "Iniciar un proyecto",
			"secondaryCta": "Ver nuestro trabajo",
		},
		"services": Tree{
			"title": "Lo que hacemos",
			"items": []string{
				"Identidad de marca",
				"Producción audiovisual",
				"Gestión de redes sociales",
				"Diseño y desarrollo web",
				"Campañas de pauta digital",
			},
		},
		"pricing": Tree{
			"title":    "Paquetes",
			"from":     "Desde {{price}}",
			"perMonth": "{{price}} / mes",
			"custom":   "¿Necesitas algo diferente? Hablemos.",
		},
		"testimonials": Tree{
			"title": "Lo que dicen nuestros clientes",
			"items": []string{
				"Entendieron nuestra marca mejor que nosotros.",
				"El video de lanzamiento duplicó nuestro alcance en un mes.",
				"Rápidos, creativos y siempre puntuales.",
			},
		},
		"contact": Tree{
			"title":    "Cuéntanos sobre tu proyecto",
			"name":     "Nombre",
			"email":    "Correo",
			"company":  "Empresa",
			"phone":    "Teléfono",
			"budget":   "Presupuesto",
			"service":  "Servicio",
			"message":  "Mensaje",
			"send":     "Enviar mensaje",
			"success":  "¡Gracias {{name}}! Recibimos tu mensaje y responderemos en menos de 24 horas.",
			"error":    "Hubo un problema al enviar tu mensaje. Por favor intenta de nuevo.",
			"required": "Por favor completa tu nombre, correo y mensaje.",
		},
		"footer": Tree{
			"rights": "Todos los derechos reservados.",
			"follow": "Síguenos",
		},
	},

	"pt": {
		"nav": Tree{
			"home":      "Início",
			"services":  "Serviços",
			"portfolio": "Portfólio",
			"pricing":   "Preços",
			"contact":   "Contato",
		},
		"hero": Tree{
			"titleLine": "Criamos marcas que se movem",
			"subtitle":  "Design, vídeo e campanhas digitais para empresas que querem se destacar",
			"cta":       "Iniciar um projeto",
		},
		"pricing": Tree{
			"from":     "A partir de {{price}}",
			"perMonth": "{{price}} / mês",
		},
		"contact": Tree{
			"title":   "Conte-nos sobre o seu projeto",
			"name":    "Nome",
			"email":   "E-mail",
			"message": "Mensagem",
			"send":    "Enviar mensagem",
			"success": "Obrigado {{name}}! Recebemos sua mensagem e responderemos em até 24 horas.",
			"error":   "Algo deu errado ao enviar sua mensagem. Tente novamente.",
		},
	},

	"fr": {
		"nav": Tree{
			"home":     "Accueil",
			"services": "Services",
			"pricing":  "Tarifs",
			"contact":  "Contact",
		},
		"hero": Tree{
			"titleLine": "Nous créons des marques qui bougent",
			"subtitle":  "Design, vidéo et campagnes digitales pour les entreprises qui veulent se démarquer",
			"cta":       "Lancer un projet",
		},
		"pricing": Tree{
			"from":     "À partir de {{price}}",
			"perMonth": "{{price}} / mois",
		},
		"contact": Tree{
			"title":   "Parlez-nous de votre projet",
			"name":    "Nom",
			"email":   "E-mail",
			"message": "Message",
			"send":    "Envoyer",
			"success": "Merci {{name}} ! Nous avons bien reçu votre message et répondrons sous 24 heures.",
			"error":   "Une erreur est survenue lors de l'envoi. Veuillez réessayer.",
		},
	},

	"de": {
		"nav": Tree{
			"home":     "Start",
			"services": "Leistungen",
			"pricing":  "Preise",
			"contact":  "Kontakt",
		},
		"hero": Tree{
			"titleLine": "Wir bauen Marken, die sich bewegen",
			"subtitle":  "Design, Film und digitale Kampagnen für Unternehmen, die auffallen wollen",
			"cta":       "Projekt starten",
		},
		"pricing": Tree{
			"from":     "Ab {{price}}",
			"perMonth": "{{price}} / Monat",
		},
		"contact": Tree{
			"title":   "Erzählen Sie uns von Ihrem Projekt",
			"name":    "Name",
			"email":   "E-Mail",
			"message": "Nachricht",
			"send":    "Nachricht senden",
			"success": "Danke {{name}}! Wir haben Ihre Nachricht erhalten und melden uns innerhalb von 24 Stunden.",
			"error":   "Beim Senden ist etwas schiefgelaufen. Bitte versuchen Sie es erneut.",
		},
	},

	"zh": {
		"hero": Tree{
			"titleLine": "我们打造有生命力的品牌",
			"cta":       "开始项目",
		},
		"pricing": Tree{
			"from": "{{price}} 起",
		},
		"contact": Tree{
			"title":   "告诉我们您的项目",
			"send":    "发送信息",
			"success": "谢谢{{name}}！我们已收到您的信息，将在24小时内回复。",
			"error":   "发送失败，请重试。",
		},
	},

	"ja": {
		"hero": Tree{
			"titleLine": "動きのあるブランドをつくる",
			"cta":       "プロジェクトを始める",
		},
		"contact": Tree{
			"send":    "送信",
			"success": "{{name}}様、お問い合わせありがとうございます。24時間以内にご返信いたします。",
			"error":   "送信に失敗しました。もう一度お試しください。",
		},
	},

	"ko": {
		"hero": Tree{
			"titleLine": "움직이는 브랜드를 만듭니다",
			"cta":       "프로젝트 시작하기",
		},
		"contact": Tree{
			"send":    "메시지 보내기",
			"success": "{{name}}님, 감사합니다! 메시지를 받았으며 24시간 이내에 답변드리겠습니다.",
			"error":   "전송에 실패했습니다. 다시 시도해 주세요.",
		},
	},

	"vi": {
		"hero": Tree{
			"titleLine": "Chúng tôi xây dựng thương hiệu sống động",
			"cta":       "Bắt đầu dự án",
		},
		"contact": Tree{
			"send":    "Gửi tin nhắn",
			"success": "Cảm ơn {{name}}! Chúng tôi đã nhận được tin nhắn và sẽ trả lời trong vòng 24 giờ.",
			"error":   "Gửi tin nhắn thất bại. Vui lòng thử lại.",
		},
	},

	"ar": {
		"hero": Tree{
			"titleLine": "نبني علامات تجارية تتحرك",
			"cta":       "ابدأ مشروعًا",
		},
		"contact": Tree{
			"send":    "إرسال الرسالة",
			"success": "شكرًا {{name}}! استلمنا رسالتك وسنرد خلال 24 ساعة.",
			"error":   "حدث خطأ أثناء إرسال رسالتك. حاول مرة أخرى.",
		},
	},

	"it": {
		"hero": Tree{
			"titleLine": "Costruiamo brand che si muovono",
			"cta":       "Inizia un progetto",
		},
		"pricing": Tree{
			"from": "Da {{price}}",
		},
		"contact": Tree{
			"title":   "Raccontaci il tuo progetto",
			"send":    "Invia messaggio",
			"success": "Grazie {{name}}! Abbiamo ricevuto il tuo messaggio e risponderemo entro 24 ore.",
			"error":   "Si è verificato un errore durante l'invio. Riprova.",
		},
	},

	"ru": {
		"nav": Tree{
			"home":    "Главная",
			"pricing": "Цены",
			"contact": "Контакты",
		},
		"hero": Tree{
			"titleLine": "Мы создаём бренды, которые движутся",
			"cta":       "Начать проект",
		},
		"pricing": Tree{
			"from": "От {{price}}",
		},
		"contact": Tree{
			"title":   "Расскажите о вашем проекте",
			"send":    "Отправить сообщение",
			"success": "Спасибо, {{name}}! Мы получили ваше сообщение и ответим в течение 24 часов.",
			"error":   "Не удалось отправить сообщение. Попробуйте ещё раз.",
		},
	},

	"hi": {
		"hero": Tree{
			"titleLine": "हम ऐसे ब्रांड बनाते हैं जो आगे बढ़ते हैं",
			"cta":       "प्रोजेक्ट शुरू करें",
		},
		"contact": Tree{
			"send":    "संदेश भेजें",
			"success": "धन्यवाद {{name}}! हमें आपका संदेश मिल गया है और हम 24 घंटे के भीतर जवाब देंगे।",
			"error":   "संदेश भेजने में समस्या हुई। कृपया पुनः प्रयास करें।",
		},
	},
}
