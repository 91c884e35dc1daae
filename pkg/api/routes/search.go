package routes

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sourcegraph/conc/pool"

	"github.com/reiseplan/reiseplan/pkg/journey"
	"github.com/reiseplan/reiseplan/pkg/provider"
	"github.com/reiseplan/reiseplan/pkg/util"
)

func SearchRouter(router fiber.Router, journeyProvider provider.Provider) {
	router.Post("/", searchJourneys(journeyProvider))
}

func searchJourneys(journeyProvider provider.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var params journey.SearchParams
		if err := c.BodyParser(&params); err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Request body must be valid JSON",
			})
		}

		if params.OriginID == "" || params.DestinationID == "" || params.Date == "" {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Missing required fields",
			})
		}

		limit := params.Limit
		if limit <= 0 {
			limit = journey.DefaultLimit
		}
		sortKey := params.Sort
		if sortKey == "" {
			sortKey = journey.SortFastest
		}

		returnDate := params.ReturnDate
		if returnDate == "" && params.Nights != nil {
			computed, err := util.AddDays(params.Date, *params.Nights)
			if err != nil {
				c.SendStatus(fiber.StatusBadRequest)
				return c.JSON(fiber.Map{
					"error": "Parameter date must be formatted as YYYY-MM-DD",
				})
			}
			returnDate = computed
		}

		searchInbound := params.IsRoundTrip && returnDate != ""

		// The two legs of a round trip are independent upstream calls, so
		// they run concurrently. Either failing fails the whole request.
		var outBound []journey.Journey
		var inBound []journey.Journey

		searchPool := pool.New().WithErrors().WithContext(c.UserContext())

		searchPool.Go(func(ctx context.Context) error {
			results, err := journeyProvider.SearchJourneys(ctx, provider.Query{
				OriginID:      params.OriginID,
				DestinationID: params.DestinationID,
				Date:          params.Date,
				Limit:         limit,
				Sort:          sortKey,
			})
			if err != nil {
				return err
			}

			outBound = results
			return nil
		})

		if searchInbound {
			searchPool.Go(func(ctx context.Context) error {
				results, err := journeyProvider.SearchJourneys(ctx, provider.Query{
					OriginID:      params.DestinationID,
					DestinationID: params.OriginID,
					Date:          returnDate,
					Limit:         limit,
					Sort:          sortKey,
				})
				if err != nil {
					return err
				}

				inBound = results
				return nil
			})
		}

		if err := searchPool.Wait(); err != nil {
			c.SendStatus(fiber.StatusBadGateway)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if outBound == nil {
			outBound = []journey.Journey{}
		}

		response := journey.SearchResponse{OutBound: outBound}
		if searchInbound {
			if inBound == nil {
				inBound = []journey.Journey{}
			}
			response.InBound = &inBound
		}

		return c.JSON(response)
	}
}
