// Package domain holds the content tree model: the static defaults
// every page ships with, and typed decoding of the JSON-encoded list
// fields stored inside single values.
package domain

import "encoding/json"

// PageTree maps section name to field key to value.
type PageTree map[string]map[string]string

// Pages is the closed set of editable pages.
var Pages = []string{"home", "servizi", "prezzi", "chi-siamo", "contatti"}

// ValidPage reports whether page belongs to the closed set.
func ValidPage(page string) bool {
	for _, p := range Pages {
		if p == page {
			return true
		}
	}
	return false
}

// DefaultTree returns a fresh deep copy of the default content for a
// page, so callers can overlay stored overrides without touching the
// shared defaults. Returns nil for an unknown page.
func DefaultTree(page string) PageTree {
	src, ok := defaults[page]
	if !ok {
		return nil
	}
	tree := make(PageTree, len(src))
	for section, fields := range src {
		copied := make(map[string]string, len(fields))
		for key, value := range fields {
			copied[key] = value
		}
		tree[section] = copied
	}
	return tree
}

func mustJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// defaults is the shipped copy for every page the site renders.
// List-valued fields are JSON strings inside a single value.
var defaults = map[string]PageTree{
	"home": {
		"hero": {
			"badge":          "Fisioterapia a Domicilio Roma",
			"title":          "Il tuo benessere,",
			"titleHighlight": "a casa tua",
			"subtitle":       "Trattamenti fisioterapici professionali direttamente a domicilio. Niente code, niente spostamenti. Solo il meglio per la tua salute.",
			"ctaPrimary":     "Prenota una Visita",
			"ctaSecondary":   "Scopri i Servizi",
			"trust1":         "Fisioterapista Laureato",
			"trust2":         "A partire da 40€",
			"trust3":         "Tutta Roma e Provincia",
		},
		"services": {
			"label":        "I Nostri Servizi",
			"title":        "Trattamenti su misura per te",
			"subtitle":     "Ogni percorso è personalizzato in base alle tue esigenze specifiche, con tecniche moderne e un approccio attento al paziente.",
			"service1Title": "Riabilitazione",
			"service1Desc":  "Recupero funzionale post-trauma, post-operatorio e per patologie muscolo-scheletriche.",
			"service2Title": "Massoterapia",
			"service2Desc":  "Trattamenti manuali per alleviare tensioni, contratture e dolori muscolari.",
			"service3Title": "Ginnastica Posturale",
			"service3Desc":  "Esercizi mirati per correggere la postura e prevenire dolori cronici.",
			"link":          "Vedi tutti i servizi",
		},
		"benefits": {
			"label":         "Perché Sceglierci",
			"title":         "La fisioterapia che viene da te",
			"subtitle":      "Dimentica le sale d'attesa e lo stress del traffico. Con FisioterApp, la cura arriva comodamente a casa tua.",
			"benefit1Title": "A Domicilio",
			"benefit1Desc":  "Un fisioterapista qualificato viene direttamente a casa tua, senza stress da spostamenti.",
			"benefit2Title": "Professionalità",
			"benefit2Desc":  "Fisioterapisti laureati con anni di esperienza in riabilitazione.",
			"benefit3Title": "Prezzi Accessibili",
			"benefit3Desc":  "Sedute a partire da 40€, con possibilità di pacchetti scontati.",
			"benefit4Title": "Tutta Roma",
			"benefit4Desc":  "Copertura completa di Roma per raggiungerti ovunque.",
		},
		"cta": {
			"title":    "Pronto a stare meglio?",
			"subtitle": "Compila il nostro quiz di valutazione e riceverai una consulenza personalizzata per il tuo percorso di guarigione.",
			"button":   "Inizia il Quiz Gratuito",
			"note":     "Rispondi a 5 semplici domande - Tempo stimato: 2 minuti",
		},
	},
	"servizi": {
		"hero": {
			"label":    "I Nostri Servizi",
			"title":    "Trattamenti professionali per ogni esigenza",
			"subtitle": "Dalla riabilitazione post-operatoria alla ginnastica posturale, offriamo una gamma completa di servizi fisioterapici direttamente a casa tua.",
		},
		"services": {
			"items": mustJSON(defaultServiceItems),
		},
		"conditions": {
			"label":    "Patologie Trattate",
			"title":    "Cosa possiamo curare insieme",
			"subtitle": "Ecco alcune delle condizioni più comuni che trattiamo ogni giorno con successo.",
			"items":    mustJSON(defaultConditions),
		},
		"cta": {
			"title":    "Hai un problema specifico?",
			"subtitle": "Compila il quiz di valutazione e descrivici la tua situazione. Ti contatteremo per una consulenza personalizzata.",
			"button":   "Inizia il Quiz",
		},
	},
	"prezzi": {
		"hero": {
			"label":    "Listino Prezzi",
			"title":    "Prezzi chiari e trasparenti",
			"subtitle": "Nessuna sorpresa, nessun costo nascosto. Scegli la formula più adatta alle tue esigenze e inizia il tuo percorso verso il benessere.",
		},
		"packages": {
			"items": mustJSON(defaultPackages),
			"note":  "Tutti i prezzi sono IVA inclusa. Fattura sanitaria disponibile per detrazione fiscale.",
		},
		"included": {
			"label":      "Tutto Incluso",
			"title":      "Cosa comprende ogni seduta",
			"item1Title": "A Domicilio",
			"item1Desc":  "Vengo direttamente a casa tua",
			"item2Title": "45-60 Minuti",
			"item2Desc":  "Durata completa della seduta",
			"item3Title": "Valutazione",
			"item3Desc":  "Analisi completa inclusa",
			"item4Title": "Fattura",
			"item4Desc":  "Per detrazione fiscale",
		},
		"faq": {
			"label": "FAQ",
			"title": "Domande Frequenti",
			"items": mustJSON(defaultFAQ),
		},
		"cta": {
			"title":    "Pronto a iniziare?",
			"subtitle": "Compila il quiz di valutazione gratuito e riceverai una proposta personalizzata per il tuo percorso di guarigione.",
			"button":   "Inizia il Quiz Gratuito",
		},
	},
	"chi-siamo": {
		"hero": {
			"label":    "Chi Siamo",
			"title":    "FisioterApp",
			"subtitle": "FisioterApp è la piattaforma che rende la fisioterapia a domicilio semplice, veloce e accessibile.",
		},
		"howItWorks": {
			"patientsLabel": "Come Funziona",
			"patientsTitle": "Per i Pazienti",
			"patientsText1": "Il paziente prenota online in pochi passaggi e viene automaticamente assegnato a un fisioterapista qualificato, selezionato in base alle sue esigenze, alla zona e alla disponibilità.",
			"patientsText2": "Nessuna ricerca complessa, nessuna attesa: pensiamo noi a individuare il professionista più adatto.",
			"prosLabel":     "Per i Professionisti",
			"prosTitle":     "Per i Fisioterapisti",
			"prosText1":     "I fisioterapisti ricevono le prenotazioni e svolgono la seduta direttamente a domicilio, offrendo un servizio professionale e personalizzato.",
			"prosText2":     "Valorizziamo il lavoro dei professionisti, permettendo loro di concentrarsi su ciò che sanno fare meglio: prendersi cura dei pazienti.",
		},
		"mission": {
			"label":       "La Nostra Missione",
			"title":       "Semplificare l'accesso alla fisioterapia",
			"description": "Il nostro obiettivo è semplificare l'accesso alla fisioterapia, offrendo ai pazienti un'esperienza comoda, affidabile e trasparente, e valorizzando il lavoro dei professionisti.",
		},
		"values": {
			"label":       "I Nostri Valori",
			"title":       "Cosa ci guida",
			"subtitle":    "Tre principi fondamentali che definiscono il nostro modo di lavorare.",
			"value1Title": "Semplicità",
			"value1Desc":  "Prenoti online in pochi passaggi e vieni automaticamente assegnato al fisioterapista più adatto. Nessuna ricerca complessa.",
			"value2Title": "Affidabilità",
			"value2Desc":  "Selezioniamo fisioterapisti qualificati in base alle tue esigenze, alla zona e alla disponibilità.",
			"value3Title": "Trasparenza",
			"value3Desc":  "Un'esperienza comoda, affidabile e trasparente per i pazienti, valorizzando il lavoro dei professionisti.",
		},
		"cta": {
			"title":           "Pronto a provare?",
			"subtitle":        "Prenota la tua prima visita in pochi click e scopri quanto è semplice ricevere fisioterapia di qualità a domicilio.",
			"buttonPrimary":   "Prenota una Visita",
			"buttonSecondary": "Contattaci",
		},
	},
	"contatti": {
		"hero": {
			"label":    "Contatti",
			"title":    "Parliamo del tuo benessere",
			"subtitle": "Hai domande o vuoi prenotare una visita? Contattami attraverso il canale che preferisci. Rispondo sempre entro 24 ore.",
		},
		"methods": {
			"items": mustJSON(defaultContactMethods),
		},
		"zones": {
			"label":    "Zone Coperte",
			"title":    "Roma",
			"subtitle": "I nostri fisioterapisti raggiungono i pazienti in tutta Roma. Ecco alcune delle zone principali dove operiamo regolarmente:",
			"items":    mustJSON(defaultZones),
		},
		"schedule": {
			"label":    "Orari",
			"title":    "Quando sono disponibile",
			"subtitle": "Offro massima flessibilità per adattarmi ai tuoi impegni. Prenota l'orario più comodo per te.",
			"items":    mustJSON(defaultSchedule),
			"note":     "* Per urgenze o esigenze particolari, contattami e troveremo una soluzione.",
		},
		"cta": {
			"title":    "Preferisci iniziare con il quiz?",
			"subtitle": "Se non sei sicuro di cosa hai bisogno, compila il nostro quiz di valutazione. Ti contatterò io con una proposta personalizzata.",
			"button":   "Inizia il Quiz",
		},
	},
}
