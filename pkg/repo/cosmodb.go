package repo

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/cockroachdb/errors"

	"github.com/skynet2/expense-tracker-sync/pkg/common"
	"github.com/skynet2/expense-tracker-sync/pkg/database"
)

const partitionKeyPath = "/user_id"

// Cosmo holds one container per entity type, partitioned by the owning user.
type Cosmo struct {
	cl *azcosmos.DatabaseClient
}

func NewCosmo(
	ctx context.Context,
	cl *azcosmos.Client,
	dbName string,
) (*Cosmo, error) {
	_, err := cl.CreateDatabase(ctx, azcosmos.DatabaseProperties{
		ID: dbName,
	}, &azcosmos.CreateDatabaseOptions{})
	if realErr := ignoreConflict(err); realErr != nil {
		return nil, realErr
	}

	db, err := cl.NewDatabase(dbName)
	if err != nil {
		return nil, err
	}

	c := &Cosmo{cl: db}

	for _, entity := range database.DependencyOrder {
		_, err = c.cl.CreateContainer(ctx, azcosmos.ContainerProperties{
			ID: string(entity),
			PartitionKeyDefinition: azcosmos.PartitionKeyDefinition{
				Paths: []string{partitionKeyPath},
			},
		}, &azcosmos.CreateContainerOptions{})
		if realErr := ignoreConflict(err); realErr != nil {
			return nil, errors.Wrapf(realErr, "create container %s", entity)
		}
	}

	return c, nil
}

// Ping reads the database properties. It backs the connectivity probe of the cosmos remote.
func (c *Cosmo) Ping(ctx context.Context) error {
	_, err := c.cl.Read(ctx, nil)

	return err
}

func ignoreConflict(err error) error {
	if statusCode(err) == http.StatusConflict {
		return nil
	}

	return err
}

func statusCode(err error) int {
	if err == nil {
		return 0
	}

	var azureErr *azcore.ResponseError
	if errors.As(err, &azureErr) {
		return azureErr.StatusCode
	}

	return 0
}

// CosmosTable is the remote store of one entity type. Every call is scoped to the
// partition of the given user.
type CosmosTable[T ScopedRecord[T]] struct {
	container *azcosmos.ContainerClient
	entity    database.EntityType
}

func NewCosmosTable[T ScopedRecord[T]](
	c *Cosmo,
	entity database.EntityType,
) (*CosmosTable[T], error) {
	container, err := c.cl.NewContainer(string(entity))
	if err != nil {
		return nil, err
	}

	return &CosmosTable[T]{
		container: container,
		entity:    entity,
	}, nil
}

func (c *CosmosTable[T]) GetAll(ctx context.Context, scopeID string) ([]T, error) {
	partitionKey, err := c.partition(scopeID)
	if err != nil {
		return nil, err
	}

	pager := c.container.NewQueryItemsPager("SELECT * FROM c", partitionKey, nil)

	items := make([]T, 0)

	for pager.More() {
		response, pageErr := pager.NextPage(ctx)
		if pageErr != nil {
			return nil, common.NewStoreError("cosmos", "get_all", pageErr)
		}

		for _, bytes := range response.Items {
			var item T
			if err = json.Unmarshal(bytes, &item); err != nil {
				return nil, common.NewStoreError("cosmos", "get_all", err)
			}

			items = append(items, item)
		}
	}

	return items, nil
}

func (c *CosmosTable[T]) GetByID(ctx context.Context, id string, scopeID string) (*T, error) {
	partitionKey, err := c.partition(scopeID)
	if err != nil {
		return nil, err
	}

	resp, err := c.container.ReadItem(ctx, partitionKey, id, nil)
	if statusCode(err) == http.StatusNotFound {
		return nil, nil
	}

	if err != nil {
		return nil, common.NewStoreError("cosmos", "get_by_id", err)
	}

	var item T
	if err = json.Unmarshal(resp.Value, &item); err != nil {
		return nil, common.NewStoreError("cosmos", "get_by_id", err)
	}

	return &item, nil
}

func (c *CosmosTable[T]) Add(ctx context.Context, record T, scopeID string) (T, error) {
	partitionKey, err := c.partition(scopeID)
	if err != nil {
		return record, err
	}

	record = record.WithScope(scopeID)

	bytes, err := json.Marshal(record)
	if err != nil {
		return record, err
	}

	_, err = c.container.CreateItem(ctx, partitionKey, bytes, nil)
	if statusCode(err) == http.StatusConflict {
		return record, errors.Wrapf(common.ErrConflict, "id %s", record.RecordID())
	}

	if err != nil {
		return record, common.NewStoreError("cosmos", "add", err)
	}

	return record, nil
}

func (c *CosmosTable[T]) Update(ctx context.Context, record T, scopeID string) (T, error) {
	partitionKey, err := c.partition(scopeID)
	if err != nil {
		return record, err
	}

	record = record.WithScope(scopeID)

	bytes, err := json.Marshal(record)
	if err != nil {
		return record, err
	}

	_, err = c.container.ReplaceItem(ctx, partitionKey, record.RecordID(), bytes, nil)
	if statusCode(err) == http.StatusNotFound {
		return record, errors.Wrapf(common.ErrNotFound, "id %s", record.RecordID())
	}

	if err != nil {
		return record, common.NewStoreError("cosmos", "update", err)
	}

	return record, nil
}

func (c *CosmosTable[T]) Delete(ctx context.Context, id string, scopeID string) (string, error) {
	partitionKey, err := c.partition(scopeID)
	if err != nil {
		return id, err
	}

	_, err = c.container.DeleteItem(ctx, partitionKey, id, nil)
	if statusCode(err) == http.StatusNotFound {
		return id, errors.Wrapf(common.ErrNotFound, "id %s", id)
	}

	if err != nil {
		return id, common.NewStoreError("cosmos", "delete", err)
	}

	return id, nil
}

func (c *CosmosTable[T]) partition(scopeID string) (azcosmos.PartitionKey, error) {
	if scopeID == "" {
		return azcosmos.PartitionKey{}, errors.Wrapf(common.ErrUnauthenticated,
			"scope id is required for %s", c.entity)
	}

	return azcosmos.NewPartitionKeyString(scopeID), nil
}
