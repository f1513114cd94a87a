package domain

import "encoding/json"

// ServiceItem is one entry of the servizi page's service catalogue.
type ServiceItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
}

// PricingPackage is one entry of the prezzi page's package list.
type PricingPackage struct {
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Unit        string   `json:"unit"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular"`
	CTA         string   `json:"cta"`
}

// FAQEntry is one question/answer pair.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ContactMethod is one entry of the contatti page's channel list.
type ContactMethod struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Href        string `json:"href"`
	Description string `json:"description"`
}

// ScheduleEntry is one opening-hours row.
type ScheduleEntry struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

// The Parse* helpers decode a JSON-encoded list field. A value that
// fails to decode yields the shipped default list, never an error: a
// broken override must not blank out a rendered page.

// ParseServiceItems decodes the servizi catalogue field.
func ParseServiceItems(value string) []ServiceItem {
	var items []ServiceItem
	if err := json.Unmarshal([]byte(value), &items); err != nil || len(items) == 0 {
		return defaultServiceItems
	}
	return items
}

// ParsePricingPackages decodes the prezzi package field.
func ParsePricingPackages(value string) []PricingPackage {
	var items []PricingPackage
	if err := json.Unmarshal([]byte(value), &items); err != nil || len(items) == 0 {
		return defaultPackages
	}
	return items
}

// ParseFAQ decodes the FAQ field.
func ParseFAQ(value string) []FAQEntry {
	var items []FAQEntry
	if err := json.Unmarshal([]byte(value), &items); err != nil || len(items) == 0 {
		return defaultFAQ
	}
	return items
}

// ParseContactMethods decodes the contact channel field.
func ParseContactMethods(value string) []ContactMethod {
	var items []ContactMethod
	if err := json.Unmarshal([]byte(value), &items); err != nil || len(items) == 0 {
		return defaultContactMethods
	}
	return items
}

// ParseSchedule decodes the opening-hours field.
func ParseSchedule(value string) []ScheduleEntry {
	var items []ScheduleEntry
	if err := json.Unmarshal([]byte(value), &items); err != nil || len(items) == 0 {
		return defaultSchedule
	}
	return items
}

// ParseStringList decodes a plain string-list field (conditions, zones)
// with an explicit fallback.
func ParseStringList(value string, fallback []string) []string {
	var items []string
	if err := json.Unmarshal([]byte(value), &items); err != nil || len(items) == 0 {
		return fallback
	}
	return items
}

// DefaultConditions returns the shipped treated-conditions list.
func DefaultConditions() []string { return defaultConditions }

// DefaultZones returns the shipped coverage-zone list.
func DefaultZones() []string { return defaultZones }

var defaultServiceItems = []ServiceItem{
	{
		ID:          "riabilitazione",
		Title:       "Riabilitazione Ortopedica",
		Description: "Recupero funzionale completo dopo interventi chirurgici, fratture, distorsioni e traumi sportivi. Programmi personalizzati per tornare alla piena attività.",
		Details:     []string{"Post-operatorio (protesi anca/ginocchio, ricostruzione legamenti)", "Fratture e distorsioni", "Lesioni muscolari", "Recupero post-infortunio sportivo"},
	},
	{
		ID:          "massoterapia",
		Title:       "Massoterapia",
		Description: "Tecniche manuali specializzate per sciogliere contratture, ridurre tensioni muscolari e migliorare la circolazione. Ideale per chi soffre di stress e rigidità.",
		Details:     []string{"Massaggio decontratturante", "Massaggio sportivo", "Massaggio rilassante", "Trattamento trigger point"},
	},
	{
		ID:          "posturale",
		Title:       "Ginnastica Posturale",
		Description: "Esercizi mirati per correggere gli squilibri posturali, prevenire dolori cronici e migliorare la qualità della vita quotidiana.",
		Details:     []string{"Correzione atteggiamenti scorretti", "Prevenzione mal di schiena", "Rieducazione posturale globale", "Esercizi per lavoratori sedentari"},
	},
	{
		ID:          "manuale",
		Title:       "Terapia Manuale",
		Description: "Tecniche avanzate di mobilizzazione articolare e manipolazione per ripristinare la corretta funzionalità delle strutture muscolo-scheletriche.",
		Details:     []string{"Mobilizzazione articolare", "Tecniche osteopatiche", "Trattamento fasciale", "Manipolazione vertebrale"},
	},
	{
		ID:          "domicilio",
		Title:       "Visite a Domicilio",
		Description: "Tutti i nostri servizi sono disponibili comodamente a casa tua. Copriamo Roma con massima flessibilità oraria.",
		Details:     []string{"Nessuno spostamento necessario", "Orari flessibili (anche sera/weekend)", "Attrezzatura professionale portatile", "Ambiente familiare e rilassante"},
	},
	{
		ID:          "neurologica",
		Title:       "Riabilitazione Neurologica",
		Description: "Trattamenti specializzati per pazienti con patologie neurologiche, mirati al recupero delle funzioni motorie e cognitive.",
		Details:     []string{"Post-ictus", "Sclerosi multipla", "Parkinson", "Lesioni midollari"},
	},
}

var defaultConditions = []string{
	"Mal di schiena", "Cervicalgia", "Sciatalgia", "Ernia del disco",
	"Artrosi", "Tendiniti", "Epicondilite", "Sindrome del tunnel carpale",
	"Spalla congelata", "Fascite plantare", "Distorsioni", "Strappi muscolari",
}

var defaultPackages = []PricingPackage{
	{
		Name:        "Seduta Singola",
		Price:       40,
		Unit:        "seduta",
		Description: "Ideale per valutazione iniziale o trattamento occasionale",
		Features:    []string{"Durata 45-60 minuti", "Valutazione iniziale inclusa", "Piano terapeutico personalizzato", "A domicilio in tutta Roma"},
		CTA:         "Prenota Ora",
	},
	{
		Name:        "Pacchetto 5 Sedute",
		Price:       180,
		Unit:        "pacchetto",
		Description: "Percorso consigliato per problematiche acute",
		Features:    []string{"36€ a seduta (risparmi 20€)", "Durata 45-60 minuti/seduta", "Monitoraggio progressi", "Esercizi da fare a casa", "Supporto WhatsApp"},
		Popular:     true,
		CTA:         "Scegli Pacchetto",
	},
	{
		Name:        "Pacchetto 10 Sedute",
		Price:       320,
		Unit:        "pacchetto",
		Description: "Percorso completo per riabilitazione o dolori cronici",
		Features:    []string{"32€ a seduta (risparmi 80€)", "Durata 45-60 minuti/seduta", "Report progressi mensile", "Programma esercizi personalizzato", "Priorità appuntamenti", "Supporto WhatsApp prioritario"},
		CTA:         "Scegli Pacchetto",
	},
}

var defaultFAQ = []FAQEntry{
	{Question: "Il prezzo include lo spostamento a domicilio?", Answer: "Sì, il prezzo indicato è tutto incluso. Non ci sono costi aggiuntivi per lo spostamento a Roma."},
	{Question: "Accettate pagamenti elettronici?", Answer: "Sì, accettiamo contanti, bonifico bancario, carta di credito/debito e pagamenti tramite app (Satispay, PayPal)."},
	{Question: "Posso detrarre le spese dalla dichiarazione dei redditi?", Answer: "Sì, rilascio regolare fattura sanitaria che potrai utilizzare per la detrazione fiscale delle spese mediche."},
	{Question: "I pacchetti hanno una scadenza?", Answer: "I pacchetti hanno validità 3 mesi dalla data di acquisto per garantire la continuità del percorso terapeutico."},
	{Question: "Cosa succede se devo annullare un appuntamento?", Answer: "Puoi annullare o spostare gratuitamente con almeno 24 ore di preavviso. Cancellazioni tardive comportano il 50% del costo."},
}

var defaultContactMethods = []ContactMethod{
	{Title: "Telefono", Value: "+39 366 199 3137", Href: "tel:+393661993137", Description: "Chiamami per informazioni o prenotazioni"},
	{Title: "WhatsApp", Value: "+39 366 199 3137", Href: "https://wa.me/393661993137", Description: "Scrivimi su WhatsApp per risposta rapida"},
	{Title: "Email", Value: "info@fisioterapp.it", Href: "mailto:info@fisioterapp.it", Description: "Per richieste dettagliate o documentazione"},
}

var defaultZones = []string{
	"Centro Storico", "Prati", "Trastevere", "EUR", "Monteverde", "Parioli",
	"Flaminio", "San Giovanni", "Testaccio", "Ostiense", "Tuscolano", "Nomentano",
	"Trieste", "Balduina", "Aurelio", "Tiburtino",
}

var defaultSchedule = []ScheduleEntry{
	{Day: "Lunedì - Venerdì", Hours: "8:00 - 20:00"},
	{Day: "Sabato", Hours: "9:00 - 14:00"},
	{Day: "Domenica", Hours: "Su appuntamento"},
}
