// Package vision defines the OCR/extraction boundary: an AI vision model
// reads delivery-note images and returns the structured JSON payload the
// validator consumes. Adapters live in subpackages; this package owns the
// shared prompt and the response-to-note plumbing.
package vision

import (
	"context"

	"github.com/crabe/delivnote/internal/domain"
	"github.com/crabe/delivnote/internal/payload"
)

// ExtractionPrompt instructs the model to transcribe every line item and
// reply with payload-schema JSON only. Shared by all adapters.
const ExtractionPrompt = `Analyse attentivement l'intégralité des bons de livraison fournis en images.
La transcription doit être exhaustive (pas d'omission de ligne ni d'article),
et chaque article doit être capturé avec les champs suivants :

- description : libellé complet, tel qu'il apparaît.
- expected_quantity : quantité attendue (nombre).
- ean13 : code-barres EAN-13 (13 chiffres). Si un code comporte 12 chiffres,
  ajoute la clé de contrôle pour renvoyer 13 chiffres.
- animal_guess : catégorie d'animal la plus appropriée (exemples : chien,
  chat, poisson, oiseau, rongeur, reptile, ferme, autres).

Retourne exclusivement un JSON respectant ce schéma :
{
  "supplier": "<string ou null>",
  "reference": "<string ou null>",
  "delivery_date": "<aaaa-mm-jj ou null>",
  "items": [
    {
      "description": "<string>",
      "expected_quantity": <float ou int>,
      "ean13": "<string de 13 chiffres>",
      "animal_guess": "<string non vide>"
    }
  ]
}

Consignes supplémentaires :
- Conserve les accents et les signes monétaires présents dans le libellé.
- N'invente jamais d'EAN : indique null si le code est illisible.
- expected_quantity doit toujours être un nombre (pas de texte).
- animal_guess doit être en minuscules.
- Ne retourne que du JSON valide, aucune phrase explicative ni commentaire.`

// Image is one delivery-note scan handed to the model.
type Image struct {
	Data     []byte
	MIMEType string
}

// Extractor sends note images to a vision model and returns its raw text
// response, expected to contain the payload JSON.
type Extractor interface {
	Extract(ctx context.Context, images []Image) (string, error)
}

// ExtractNote runs the extractor and validates its response into a Note.
func ExtractNote(ctx context.Context, e Extractor, images []Image) (*domain.Note, error) {
	raw, err := e.Extract(ctx, images)
	if err != nil {
		return nil, err
	}
	return payload.Decode([]byte(CleanResponse(raw)))
}
