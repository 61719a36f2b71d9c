package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/konekte/resourcehub/backend/internal/adapters/database"
	"github.com/konekte/resourcehub/backend/internal/application/services"
	"github.com/konekte/resourcehub/backend/internal/domain/entities"
	"github.com/konekte/resourcehub/backend/internal/infrastructure/clients/postgres"
	"github.com/konekte/resourcehub/backend/internal/infrastructure/observability"
	"github.com/konekte/resourcehub/backend/pkg/config"
	"github.com/konekte/resourcehub/backend/pkg/secrets"
	"github.com/rs/zerolog/log"
)

type seedProvider struct {
	name, category, description, location, phone, hours string
	owner                                                int
}

type seedReview struct {
	rating   int
	comment  string
	user     int
	provider int
}

var seedUsers = []services.CreateUserInput{
	{Name: "Marie Jean-Baptiste", Email: "marie.jb@email.ht"},
	{Name: "Pierre Louis", Email: "pierre.louis@email.ht"},
	{Name: "Claudette Estimé", Email: "claudette.estime@email.ht"},
	{Name: "Jean-Robert Dupont", Email: "jeanrobert.d@email.ht"},
	{Name: "Micheline Pierre", Email: "micheline.p@email.ht"},
	{Name: "Jacques Morisseau", Email: "jacques.m@email.ht"},
}

var seedProviders = []seedProvider{
	{
		name:        "Hôpital Général de Port-au-Prince",
		category:    entities.CategoryMedicalHealth,
		description: "Hôpital public offrant des services médicaux généraux, urgences 24/7, et soins spécialisés. Personnel médical qualifié disponible.",
		location:    "Boulevard Jean-Jacques Dessalines, Port-au-Prince",
		phone:       "2222-2323",
		hours:       "24/7 - Urgences disponibles",
		owner:       0,
	},
	{
		name:        "Clinique Médico-Sociale de Delmas",
		category:    entities.CategoryMedicalHealth,
		description: "Clinique communautaire offrant consultations, vaccinations, soins prénataux et services de laboratoire à prix abordables.",
		location:    "Delmas 33, près du marché",
		phone:       "3456-7890",
		hours:       "Lundi-Vendredi: 7h-17h, Samedi: 8h-14h",
		owner:       1,
	},
	{
		name:        "Pharmacie Solidarité",
		category:    entities.CategoryMedicalHealth,
		description: "Pharmacie communautaire avec médicaments génériques abordables. Personnel formé pour conseils pharmaceutiques.",
		location:    "Route de Frères, Pétion-Ville",
		phone:       "2811-4455",
		hours:       "Lundi-Samedi: 8h-19h, Dimanche: 9h-13h",
		owner:       0,
	},
	{
		name:        "Bibliothèque Communautaire Dessalines",
		category:    entities.CategoryEducation,
		description: "Bibliothèque publique avec livres en français et créole, accès internet gratuit, et espace d'étude silencieux pour étudiants.",
		location:    "Rue Capois, près de la Place Boyer",
		phone:       "2234-5566",
		hours:       "Lundi-Vendredi: 8h-18h, Samedi: 9h-15h",
		owner:       2,
	},
	{
		name:        "École Nationale de Carrefour",
		category:    entities.CategoryEducation,
		description: "École publique primaire et secondaire accueillant 800 élèves. Programmes en français et créole avec activités parascolaires.",
		location:    "Carrefour, Route de l'Aéroport",
		phone:       "3877-9988",
		hours:       "Lundi-Vendredi: 7h-15h",
		owner:       2,
	},
	{
		name:        "Centre de Formation Professionnelle",
		category:    entities.CategoryEducation,
		description: "Formation en informatique, couture, électricité et plomberie. Certificats reconnus. Cours du soir disponibles.",
		location:    "Rue Panaméricaine, Delmas 19",
		phone:       "3701-2233",
		hours:       "Lundi-Samedi: 8h-20h",
		owner:       3,
	},
	{
		name:        "Point d'Eau Potable - Cité Soleil",
		category:    entities.CategoryWaterSanitation,
		description: "Station de distribution d'eau potable traitée. Prix abordable, service rapide. Bidons disponibles à l'achat.",
		location:    "Avenue N, Cité Soleil",
		phone:       "3722-8899",
		hours:       "Tous les jours: 6h-18h",
		owner:       1,
	},
	{
		name:        "DINEPA - Bureau Régional",
		category:    entities.CategoryWaterSanitation,
		description: "Bureau régional pour signaler problèmes d'eau, demandes de connexion et urgences sanitaires.",
		location:    "Rue Legitimate, Tabarre",
		phone:       "2812-3344",
		hours:       "Lundi-Vendredi: 8h-16h",
		owner:       4,
	},
	{
		name:        "Centre Culturel et Communautaire de Pétion-Ville",
		category:    entities.CategoryCommunityCenters,
		description: "Espace polyvalent pour événements communautaires, formations, rencontres. Salle climatisée avec équipement audiovisuel.",
		location:    "Rue Grégoire, Pétion-Ville",
		phone:       "2940-5566",
		hours:       "Lundi-Dimanche: 8h-22h (sur réservation)",
		owner:       3,
	},
	{
		name:        "Église Baptiste de la Renaissance",
		category:    entities.CategoryCommunityCenters,
		description: "Lieu de culte ouvert à tous. Programmes d'aide communautaire, distribution alimentaire mensuelle, et activités pour jeunes.",
		location:    "Boulevard Harry Truman, Carrefour",
		phone:       "3788-6677",
		hours:       "Dimanche: 9h-13h, Mercredi: 18h-20h, Activités quotidiennes",
		owner:       5,
	},
	{
		name:        "Croix-Rouge Haïtienne - Antenne Ouest",
		category:    entities.CategoryEmergencyServices,
		description: "Services d'urgence, premiers secours, ambulance, et assistance en cas de catastrophe naturelle. Équipe disponible 24/7.",
		location:    "Boulevard Jean-Jacques Dessalines",
		phone:       "3701-1234",
		hours:       "24/7 - Urgences",
		owner:       0,
	},
	{
		name:        "Police Nationale d'Haïti - Commissariat Centre-Ville",
		category:    entities.CategoryEmergencyServices,
		description: "Poste de police pour urgences, plaintes, et assistance sécuritaire. Personnel disponible en tout temps.",
		location:    "Champ de Mars, près du Palais National",
		phone:       "2223-3344",
		hours:       "24/7",
		owner:       4,
	},
}

var seedReviews = []seedReview{
	{4, "Service d'urgence efficace. J'ai été bien pris en charge malgré l'affluence. Personnel compétent.", 2, 0},
	{3, "Bons médecins mais temps d'attente très long. Il faut améliorer l'organisation.", 3, 0},
	{5, "Excellente clinique! Personnel accueillant et prix très abordables. Je recommande vivement.", 4, 1},
	{5, "Ma famille se soigne ici depuis 3 ans. Service de qualité, jamais déçu.", 0, 1},
	{4, "Prix corrects et bon conseil du pharmacien. Parfois en rupture de stock sur certains médicaments.", 1, 2},
	{5, "Endroit calme et propre pour étudier. Internet fonctionne bien. Excellent pour les étudiants!", 3, 3},
	{4, "Bonne collection de livres. J'aimerais voir plus de livres récents mais c'est déjà très bien.", 5, 3},
	{4, "Mes enfants sont heureux dans cette école. Bons professeurs et environnement sécurisé.", 0, 4},
	{5, "J'ai fait ma formation en informatique ici. Excellents formateurs, j'ai trouvé du travail après!", 1, 5},
	{5, "Formation pratique et utile. Les cours du soir sont parfaits pour ceux qui travaillent la journée.", 2, 5},
	{3, "Eau de bonne qualité mais parfois il y a beaucoup de queue. Il faudrait plus de robinets.", 4, 6},
	{4, "Service correct et prix raisonnable. Personnel aimable.", 5, 6},
	{5, "Magnifique espace pour événements! Très bien équipé et personnel professionnel.", 2, 8},
	{5, "Intervention rapide lors de l'urgence de mon père. Équipe professionnelle et dévouée. Merci!", 1, 10},
	{5, "Service exemplaire. Toujours là quand la communauté en a besoin.", 3, 10},
}

func main() {
	loadVaultSecrets()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	observability.InitLogger("resource-hub-seed", cfg.App.Env, cfg.App.LogLevel)

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to DB")
	}
	defer pgClient.Close()

	if err := pgClient.MigrateUp(); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	ctx := context.Background()
	if err := seed(ctx, pgClient); err != nil {
		pgClient.Close()
		log.Fatal().Err(err).Msg("seeding failed")
	}
}

func seed(ctx context.Context, pgClient *postgres.Client) error {
	log.Info().Msg("deleting existing data")
	if err := deleteAll(ctx, pgClient); err != nil {
		return err
	}

	userAdapter := database.NewUserAdapter(pgClient)
	providerAdapter := database.NewServiceProviderAdapter(pgClient)
	reviewAdapter := database.NewReviewAdapter(pgClient)

	userService := services.NewUserService(userAdapter, providerAdapter, reviewAdapter, pgClient)
	providerService := services.NewServiceProviderService(userAdapter, providerAdapter, reviewAdapter, pgClient)
	reviewService := services.NewReviewService(userAdapter, providerAdapter, reviewAdapter, pgClient)

	users := make([]*entities.User, 0, len(seedUsers))
	for _, input := range seedUsers {
		user, err := userService.Create(ctx, input)
		if err != nil {
			return fmt.Errorf("create user %q: %w", input.Name, err)
		}
		users = append(users, user)
	}
	log.Info().Int("count", len(users)).Msg("created users")

	providers := make([]*entities.ServiceProvider, 0, len(seedProviders))
	for _, p := range seedProviders {
		phone, hours := p.phone, p.hours
		provider, err := providerService.Create(ctx, services.CreateServiceProviderInput{
			Name:        p.name,
			Category:    p.category,
			Description: p.description,
			Location:    p.location,
			Phone:       &phone,
			Hours:       &hours,
			UserID:      users[p.owner].ID,
		})
		if err != nil {
			return fmt.Errorf("create service provider %q: %w", p.name, err)
		}
		providers = append(providers, provider)
	}
	log.Info().Int("count", len(providers)).Msg("created service providers")

	for _, r := range seedReviews {
		_, err := reviewService.Create(ctx, services.CreateReviewInput{
			Rating:            json.Number(fmt.Sprint(r.rating)),
			Comment:           r.comment,
			UserID:            users[r.user].ID,
			ServiceProviderID: providers[r.provider].ID,
		})
		if err != nil {
			return fmt.Errorf("create review for %q: %w", providers[r.provider].Name, err)
		}
	}
	log.Info().Int("count", len(seedReviews)).Msg("created reviews")

	for _, category := range entities.Categories {
		listed, err := providerService.List(ctx, services.ServiceProviderFilter{Category: category})
		if err != nil {
			return err
		}
		log.Info().Str("category", category).Int("service_providers", len(listed)).Msg("seeded category")
	}
	return nil
}

func deleteAll(ctx context.Context, pgClient *postgres.Client) error {
	dialect := goqu.Dialect("postgres")
	return pgClient.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, table := range []string{"reviews", "service_providers", "users"} {
			query, args, err := dialect.Delete(table).Prepared(true).ToSQL()
			if err != nil {
				return err
			}
			if _, err := pgClient.Conn(ctx).ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("delete %s: %w", table, err)
			}
		}
		return nil
	})
}

// loadVaultSecrets exports configuration stored in Vault when VAULT_ENABLED is set.
func loadVaultSecrets() {
	result, err := secrets.ApplyVaultSecrets(context.Background(), secrets.LoadVaultConfigFromEnv())
	if err != nil {
		log.Warn().Err(err).Msg("failed to load secrets from Vault, using environment only")
		return
	}
	if result.Loaded > 0 {
		log.Info().Int("loaded", result.Loaded).Int("skipped", result.Skipped).Msg("loaded configuration from Vault")
	}
}
