// Package queries holds the read side: listing and export queries that read
// the record store directly with SQL and return flat views. Queries never
// change state and never go through the unit of work.
//
// Every query is a struct built by a validating constructor and handled by a
// handler holding a *gorm.DB:
//
//	query, err := queries.NewGetMyOrdersQuery(userID)
//	if err != nil {
//	    return err
//	}
//	orders, err := queries.NewGetMyOrdersQueryHandler(db).Handle(ctx, query)
package queries
