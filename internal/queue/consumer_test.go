package queue

import (
    "testing"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
)

func TestMergeDeliveriesTagsSourceQueue(t *testing.T) {
    venue := make(chan amqp.Delivery, 1)
    gig := make(chan amqp.Delivery, 1)
    venue <- amqp.Delivery{Body: []byte("v")}
    gig <- amqp.Delivery{Body: []byte("g")}
    close(venue)
    close(gig)

    merged := mergeDeliveries(map[string]<-chan amqp.Delivery{
        VenueApprovedQueue: venue,
        GigPublishedQueue:  gig,
    })

    got := map[string]string{}
    for i := 0; i < 2; i++ {
        select {
        case d, ok := <-merged:
            if !ok {
                t.Fatalf("merged closed after %d of 2 deliveries", i)
            }
            got[d.queue] = string(d.msg.Body)
        case <-time.After(time.Second):
            t.Fatalf("timed out waiting for delivery %d", i)
        }
    }
    if got[VenueApprovedQueue] != "v" || got[GigPublishedQueue] != "g" {
        t.Fatalf("deliveries mistagged: %v", got)
    }
}

// A dropped broker connection closes every consume channel; the merged
// channel must close too so the consume loop can return and reconnect.
func TestMergeDeliveriesClosesWhenSourcesClose(t *testing.T) {
    venue := make(chan amqp.Delivery)
    gig := make(chan amqp.Delivery)
    merged := mergeDeliveries(map[string]<-chan amqp.Delivery{
        VenueApprovedQueue: venue,
        GigPublishedQueue:  gig,
    })

    close(venue)
    select {
    case <-merged:
        t.Fatal("merged closed with one source still open")
    case <-time.After(50 * time.Millisecond):
    }

    close(gig)
    select {
    case _, ok := <-merged:
        if ok {
            t.Fatal("expected merged to close, got a delivery")
        }
    case <-time.After(time.Second):
        t.Fatal("merged did not close after all sources closed")
    }
}
